package calc

// Complex is a complex coefficient whose real and imaginary parts are Float values.
// The zero value is the number 0.
type Complex struct {
	re Float
	im Float
}

// NewComplex returns the numeric complex value re + i·im.
func NewComplex(re, im float64) Complex {
	return Complex{re: NewFloat(re), im: NewFloat(im)}
}

// FromFloat promotes a real Float to a Complex with zero imaginary part.
func FromFloat(f Float) Complex {
	return Complex{re: f}
}

// FromParts builds a Complex from two Float parts.
func FromParts(re, im Float) Complex {
	return Complex{re: re, im: im}
}

// FromComplex128 converts a Go complex number.
func FromComplex128(z complex128) Complex {
	return NewComplex(real(z), imag(z))
}

// Real returns the real part.
func (c Complex) Real() Float { return c.re }

// Imag returns the imaginary part.
func (c Complex) Imag() Float { return c.im }

// IsZero reports whether both parts are exactly the numeric zero.
func (c Complex) IsZero() bool { return c.re.IsZero() && c.im.IsZero() }

// IsReal reports whether the imaginary part is exactly zero.
func (c Complex) IsReal() bool { return c.im.IsZero() }

// IsSymbolic reports whether either part is symbolic.
func (c Complex) IsSymbolic() bool { return c.re.IsSymbolic() || c.im.IsSymbolic() }

// Add returns c + d.
func (c Complex) Add(d Complex) Complex {
	return Complex{re: c.re.Add(d.re), im: c.im.Add(d.im)}
}

// Sub returns c - d.
func (c Complex) Sub(d Complex) Complex {
	return Complex{re: c.re.Sub(d.re), im: c.im.Sub(d.im)}
}

// Mul returns c · d = (ac − bd) + i(ad + bc).
func (c Complex) Mul(d Complex) Complex {
	re := c.re.Mul(d.re).Sub(c.im.Mul(d.im))
	im := c.re.Mul(d.im).Add(c.im.Mul(d.re))

	return Complex{re: re, im: im}
}

// Scale multiplies both parts by the real factor f.
func (c Complex) Scale(f Float) Complex {
	return Complex{re: c.re.Mul(f), im: c.im.Mul(f)}
}

// Neg returns −c.
func (c Complex) Neg() Complex {
	return Complex{re: c.re.Neg(), im: c.im.Neg()}
}

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex {
	return Complex{re: c.re, im: c.im.Neg()}
}

// Complex128 returns the numeric value or ErrSymbolic.
func (c Complex) Complex128() (complex128, error) {
	re, err := c.re.Float64()
	if err != nil {
		return 0, err
	}
	im, err := c.im.Float64()
	if err != nil {
		return 0, err
	}

	return complex(re, im), nil
}

// Equal reports exact equality of both parts.
func (c Complex) Equal(d Complex) bool {
	return c.re.Equal(d.re) && c.im.Equal(d.im)
}

// ApproxEqual compares both parts within tol (absolute or relative).
func (c Complex) ApproxEqual(d Complex, tol float64) bool {
	return c.re.ApproxEqual(d.re, tol) && c.im.ApproxEqual(d.im, tol)
}

// String renders "(<re> + i * <im>)".
func (c Complex) String() string {
	return "(" + c.re.String() + " + i * " + c.im.String() + ")"
}
