package mathf

// Angle and timing constants. The binary-angle ("s") unit splits a full turn
// into 65536 steps.
const (
	Pi  = 3.14159265358979323846
	Tau = Pi * 2.0
	HPi = Pi * 0.5

	Deg2Rad = 0.0174532925199433
	Rad2Deg = 57.29577951308231
	S2Rad   = 0.0000958737992429
	S2Deg   = 0.0054931640625
	Rad2S   = 10430.37835047045
	Deg2S   = 182.0444444444444

	// CPU cycle counts to wall time on a 93.75 MHz MIPS core.
	C2Sec  = 1.06666666e-8
	C2MSec = 0.00001066666
)

// Float32 shorthands.
const (
	PiF  float32 = Pi
	TauF float32 = Tau
	HPiF float32 = HPi
)

func DToR(d float64) float64 { return d * Deg2Rad }
func RToD(r float64) float64 { return r * Rad2Deg }
func SToR(s float64) float64 { return s * S2Rad }
func SToD(s float64) float64 { return s * S2Deg }
func RToS(r float64) float64 { return r * Rad2S }
func DToS(d float64) float64 { return d * Deg2S }

// DToRF converts degrees to radians in float32.
func DToRF(d float32) float32 { return d * float32(Deg2Rad) }

// RToDF converts radians to degrees in float32.
func RToDF(r float32) float32 { return r * float32(Rad2Deg) }

// CyclesToSec converts a CPU cycle count to seconds.
func CyclesToSec(c uint64) float64 { return float64(c) * C2Sec }

// CyclesToMSec converts a CPU cycle count to milliseconds.
func CyclesToMSec(c uint64) float64 { return float64(c) * C2MSec }
