package mathf

import (
	"math"
	"sync/atomic"
)

// Provider supplies the transcendental functions used by the geometry
// packages. Implementations must be safe for concurrent use.
type Provider interface {
	Sin(x float32) float32
	Cos(x float32) float32
	Acos(x float32) float32
	Sqrt(x float32) float32
}

// Std is the Provider backed by the standard math package.
type Std struct{}

func (Std) Sin(x float32) float32  { return float32(math.Sin(float64(x))) }
func (Std) Cos(x float32) float32  { return float32(math.Cos(float64(x))) }
func (Std) Acos(x float32) float32 { return float32(math.Acos(float64(x))) }
func (Std) Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

type providerBox struct{ p Provider }

var current atomic.Pointer[providerBox]

func init() {
	current.Store(&providerBox{p: Std{}})
}

// SetProvider installs p for Sinf, Cosf, Acosf and Sqrtf. A nil p restores Std.
// Install once at startup, before other goroutines do math.
func SetProvider(p Provider) {
	if p == nil {
		p = Std{}
	}
	current.Store(&providerBox{p: p})
}

// CurrentProvider returns the installed Provider.
func CurrentProvider() Provider { return current.Load().p }

func Sinf(x float32) float32  { return current.Load().p.Sin(x) }
func Cosf(x float32) float32  { return current.Load().p.Cos(x) }
func Acosf(x float32) float32 { return current.Load().p.Acos(x) }
func Sqrtf(x float32) float32 { return current.Load().p.Sqrt(x) }
