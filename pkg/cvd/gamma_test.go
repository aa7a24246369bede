package cvd

import (
	"math"
	"testing"
)

func TestGammaRoundTrip(t *testing.T) {
	for x := 0; x <= 255; x++ {
		got := EncodeGamma(DecodeGamma(x))
		if got != x && got != x-1 {
			t.Errorf("EncodeGamma(DecodeGamma(%d)) = %d, want %d or %d", x, got, x, x-1)
		}
	}
	for _, x := range []int{0, 255} {
		if got := EncodeGamma(DecodeGamma(x)); got != x {
			t.Errorf("EncodeGamma(DecodeGamma(%d)) = %d, want exact", x, got)
		}
	}
}

func TestEncodeGammaTruncates(t *testing.T) {
	tests := []struct {
		linear float64
		want   int
	}{
		{linear: 0.5, want: 186},  // 186.08
		{linear: 0.25, want: 135}, // 135.79
		{linear: 0.01, want: 31},  // 31.44
	}
	for _, tt := range tests {
		if got := EncodeGamma(tt.linear); got != tt.want {
			t.Errorf("EncodeGamma(%v) = %d, want %d", tt.linear, got, tt.want)
		}
	}
}

func TestDecodeGamma(t *testing.T) {
	tests := []struct {
		name    string
		channel int
		want    float64
	}{
		{name: "black", channel: 0, want: 0},
		{name: "white", channel: 255, want: 1},
		{name: "mid grey", channel: 128, want: math.Pow(128.0/255.0, 2.2)},
		{name: "below range", channel: -10, want: 0},
		{name: "above range", channel: 300, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeGamma(tt.channel); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DecodeGamma(%d) = %v, want %v", tt.channel, got, tt.want)
			}
		})
	}
}

func TestEncodeGammaClamps(t *testing.T) {
	tests := []struct {
		name   string
		linear float64
		want   int
	}{
		{name: "zero", linear: 0, want: 0},
		{name: "negative", linear: -0.5, want: 0},
		{name: "one", linear: 1, want: 255},
		{name: "above one", linear: 3.7, want: 255},
		{name: "positive infinity", linear: math.Inf(1), want: 255},
		{name: "negative infinity", linear: math.Inf(-1), want: 0},
		{name: "NaN", linear: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeGamma(tt.linear); got != tt.want {
				t.Errorf("EncodeGamma(%v) = %d, want %d", tt.linear, got, tt.want)
			}
		})
	}
}

func TestEncodeGammaMonotonic(t *testing.T) {
	prev := 0
	for i := 0; i <= 1000; i++ {
		got := EncodeGamma(float64(i) / 1000)
		if got < prev {
			t.Fatalf("EncodeGamma(%v) = %d, less than previous %d", float64(i)/1000, got, prev)
		}
		prev = got
	}
}
