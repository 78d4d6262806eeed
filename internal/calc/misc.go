package calc

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// AgeResult breaks an age down the way people say it.
type AgeResult struct {
	Years, Months, Days int
	TotalDays           int
	NextBirthdayIn      int // days until the next birthday
}

// Age computes the elapsed age from a date of birth as of now.
func Age(dob, now time.Time) AgeResult {
	years := now.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
		anniversary = dob.AddDate(years, 0, 0)
	}

	months := 0
	for anniversary.AddDate(0, months+1, 0).Before(now) || anniversary.AddDate(0, months+1, 0).Equal(now) {
		months++
	}
	days := int(now.Sub(anniversary.AddDate(0, months, 0)).Hours() / 24)

	next := dob.AddDate(years+1, 0, 0)
	return AgeResult{
		Years:          years,
		Months:         months,
		Days:           days,
		TotalDays:      int(now.Sub(dob).Hours() / 24),
		NextBirthdayIn: int(next.Sub(now).Hours() / 24),
	}
}

// PaceResult holds a running pace both per kilometer and as speed.
type PaceResult struct {
	SecondsPerKm float64
	KmPerHour    float64
}

// Pace computes pace from a distance in kilometers and a total duration.
func Pace(distanceKm float64, duration time.Duration) (PaceResult, error) {
	if distanceKm <= 0 {
		return PaceResult{}, fmt.Errorf("distance must be positive")
	}
	if duration <= 0 {
		return PaceResult{}, fmt.Errorf("duration must be positive")
	}
	secs := duration.Seconds()
	return PaceResult{
		SecondsPerKm: secs / distanceKm,
		KmPerHour:    distanceKm / (secs / 3600),
	}, nil
}

// FormatPace renders seconds-per-km as "M:SS min/km".
func FormatPace(secondsPerKm float64) string {
	total := int(secondsPerKm + 0.5)
	return fmt.Sprintf("%d:%02d min/km", total/60, total%60)
}

// ConcreteSlab returns the concrete volume in cubic meters for a rectangular
// slab, with a waste margin applied.
func ConcreteSlab(lengthM, widthM, thicknessM, wastePct float64) float64 {
	return lengthM * widthM * thicknessM * (1 + wastePct/100)
}

// Password character classes.
const (
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits  = "0123456789"
	passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// PasswordOptions selects the character classes for Password.
type PasswordOptions struct {
	Length  int
	Upper   bool
	Digits  bool
	Symbols bool
}

// Password generates a random password from the CSPRNG. Lowercase letters
// are always included; the options add further classes.
func Password(opts PasswordOptions) (string, error) {
	if opts.Length < 4 || opts.Length > 128 {
		return "", fmt.Errorf("length must be between 4 and 128")
	}

	alphabet := passwordLower
	if opts.Upper {
		alphabet += passwordUpper
	}
	if opts.Digits {
		alphabet += passwordDigits
	}
	if opts.Symbols {
		alphabet += passwordSymbols
	}

	var b strings.Builder
	b.Grow(opts.Length)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < opts.Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}
