package config

import (
	"math"
	"runtime"
	"strconv"
)

// Worker count bounds.
const (
	MinWorkers     = 2
	DefaultWorkers = 2
)

// HardwareThreads returns the number of hardware threads available to the
// process.
func HardwareThreads() int {
	return runtime.NumCPU()
}

// ClampWorkers forces requested into [MinWorkers, max(MinWorkers, hardwareMax)].
// Out-of-range values are not an error.
func ClampWorkers(requested, hardwareMax int) int {
	upper := max(hardwareMax, MinWorkers)
	return min(max(requested, MinWorkers), upper)
}

// workerCount is a pflag.Value that never rejects input: like atoi it reads
// the leading decimal digits and yields 0 when there are none, leaving the
// clamp to fix the value up.
type workerCount int

func (w *workerCount) String() string { return strconv.Itoa(int(*w)) }

func (w *workerCount) Set(s string) error {
	*w = workerCount(leadingInt(s))
	return nil
}

func (w *workerCount) Type() string { return "int" }

// leadingIntCap stops accumulation before n*10+9 can leave the int32 range,
// so long inputs saturate instead of wrapping on 32-bit platforms.
const leadingIntCap = math.MaxInt32 / 10

func leadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n < leadingIntCap {
			n = n*10 + int(s[i]-'0')
		}
	}
	if neg {
		return -n
	}
	return n
}
