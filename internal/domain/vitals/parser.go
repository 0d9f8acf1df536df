package vitals

import (
	"regexp"
	"strconv"
	"strings"
)

// The device firmware owns these payload formats. Extraction is best-effort:
// a pattern that does not match yields an absent field, never a zero.
var (
	bpPairRe = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
	bpmRe    = regexp.MustCompile(`BPM\s*:\s*(\d+)`)
	spo2Re   = regexp.MustCompile(`SpO2\s*:\s*(\d+)%`)
	tempRe   = regexp.MustCompile(`(\d+\.?\d*)\s*°?\s*[Cc]?`)
)

// finalMarker distinguishes an end-of-measurement blood-pressure payload
// from in-progress samples. Case-sensitive, per firmware.
const finalMarker = "Result"

// BloodPressureReading is the parsed form of a blood-pressure payload.
// Systolic, diastolic, and heart rate are only extracted from final
// payloads; intermediate samples carry no usable numbers.
type BloodPressureReading struct {
	Systolic  *int
	Diastolic *int
	HeartRate *int
	IsFinal   bool
}

// SpO2Reading is the parsed form of a pulse-oximeter payload. The two
// fields match independently; either may be absent.
type SpO2Reading struct {
	SpO2      *int
	HeartRate *int
}

// ParseBloodPressure extracts a reading from free-form monitor text such as
// "Result: 118 / 76, BPM : 80". Non-final payloads (no "Result" marker)
// yield IsFinal=false and no extracted values.
func ParseBloodPressure(text string) BloodPressureReading {
	r := BloodPressureReading{IsFinal: strings.Contains(text, finalMarker)}
	if !r.IsFinal {
		return r
	}

	if m := bpPairRe.FindStringSubmatch(text); m != nil {
		sys, err1 := strconv.Atoi(m[1])
		dia, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			r.Systolic = &sys
			r.Diastolic = &dia
		}
	}
	if m := bpmRe.FindStringSubmatch(text); m != nil {
		if hr, err := strconv.Atoi(m[1]); err == nil {
			r.HeartRate = &hr
		}
	}
	return r
}

// ParseSpO2 extracts oxygen saturation and heart rate from text such as
// "SpO2 : 98%, BPM : 75".
func ParseSpO2(text string) SpO2Reading {
	var r SpO2Reading
	if m := spo2Re.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			r.SpO2 = &v
		}
	}
	if m := bpmRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			r.HeartRate = &v
		}
	}
	return r
}

// ParseTemperature extracts degrees Celsius from text such as "37.5°C" or
// "36.8". Returns nil when no number is present.
func ParseTemperature(text string) *float64 {
	m := tempRe.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}
