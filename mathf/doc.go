// Package mathf holds the scalar helpers shared by the vector, quaternion,
// matrix and color packages: min/max, abs, clamp, float modulo, integer
// power, tweening, and the angle unit constants.
//
// Trigonometry and square roots go through a Provider. The default provider
// wraps the standard math package; targets without a fast FPU can install a
// table-driven provider with SetProvider once at startup.
package mathf
