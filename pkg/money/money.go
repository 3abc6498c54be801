package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Paise represents a monetary amount in integer paise (1/100 INR).
// All engine arithmetic is done in paise to avoid floating point drift
// between the displayed and the charged amount.
type Paise int64

// FromRupees converts a whole-rupee amount to paise.
func FromRupees(rupees int64) Paise {
	return Paise(rupees * 100)
}

// Rupees returns the whole-rupee part of the amount (truncated).
func (p Paise) Rupees() int64 {
	return int64(p) / 100
}

// MulInt multiplies the amount by an integer factor.
func (p Paise) MulInt(n int64) Paise {
	return Paise(int64(p) * n)
}

// ApplyBasisPoints возвращает долю суммы в базисных пунктах (1 bp = 0.01%)
// с округлением round-half-up. Используется для расчёта налога:
// 18% = 1800 bp.
func (p Paise) ApplyBasisPoints(bp int64) Paise {
	if p < 0 || bp < 0 {
		return 0
	}
	return Paise((int64(p)*bp + 5000) / 10000)
}

// FormatINR formats the amount with the Indian digit grouping
// (₹12,34,567.89). Intended for logs and receipts; the JSON API always
// carries raw integer paise.
func (p Paise) FormatINR() string {
	negative := p < 0
	v := int64(p)
	if negative {
		v = -v
	}

	whole := v / 100
	frac := v % 100

	digits := strconv.FormatInt(whole, 10)

	// Индийская группировка: последние три цифры, дальше по две.
	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if len(head) > 0 {
			groups = append([]string{head}, groups...)
		}
	} else {
		groups = []string{digits}
	}

	out := "₹" + strings.Join(groups, ",")
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	if negative {
		out = "-" + out
	}
	return out
}

// String makes Paise readable in log output.
func (p Paise) String() string {
	return p.FormatINR()
}
