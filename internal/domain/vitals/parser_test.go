package vitals

import "testing"

func TestParseBloodPressure_FinalReading(t *testing.T) {
	r := ParseBloodPressure("Result: 118 / 76, BPM : 80")
	if !r.IsFinal {
		t.Fatal("expected final reading")
	}
	if r.Systolic == nil || *r.Systolic != 118 {
		t.Errorf("expected systolic 118, got %v", r.Systolic)
	}
	if r.Diastolic == nil || *r.Diastolic != 76 {
		t.Errorf("expected diastolic 76, got %v", r.Diastolic)
	}
	if r.HeartRate == nil || *r.HeartRate != 80 {
		t.Errorf("expected heart rate 80, got %v", r.HeartRate)
	}
}

func TestParseBloodPressure_WhitespaceTolerant(t *testing.T) {
	r := ParseBloodPressure("Result 120/80 BPM:72")
	if r.Systolic == nil || *r.Systolic != 120 || r.Diastolic == nil || *r.Diastolic != 80 {
		t.Errorf("expected 120/80, got %v/%v", r.Systolic, r.Diastolic)
	}
	if r.HeartRate == nil || *r.HeartRate != 72 {
		t.Errorf("expected heart rate 72, got %v", r.HeartRate)
	}
}

func TestParseBloodPressure_Ongoing(t *testing.T) {
	r := ParseBloodPressure("Measuring... 110 / 70")
	if r.IsFinal {
		t.Error("expected non-final reading")
	}
	if r.Systolic != nil || r.Diastolic != nil || r.HeartRate != nil {
		t.Error("expected no extraction from a non-final payload")
	}
}

func TestParseBloodPressure_FinalMarkerCaseSensitive(t *testing.T) {
	if ParseBloodPressure("result: 118 / 76").IsFinal {
		t.Error("lowercase marker must not finalize")
	}
}

func TestParseBloodPressure_FinalWithoutPair(t *testing.T) {
	r := ParseBloodPressure("Result: BPM : 90")
	if !r.IsFinal {
		t.Fatal("expected final reading")
	}
	if r.Systolic != nil || r.Diastolic != nil {
		t.Error("expected absent pressure pair")
	}
	if r.HeartRate == nil || *r.HeartRate != 90 {
		t.Errorf("expected heart rate 90, got %v", r.HeartRate)
	}
}

func TestParseBloodPressure_FinalWithoutHeartRate(t *testing.T) {
	r := ParseBloodPressure("Result: 130 / 85")
	if r.HeartRate != nil {
		t.Errorf("expected absent heart rate, got %v", r.HeartRate)
	}
}

func TestParseSpO2(t *testing.T) {
	r := ParseSpO2("SpO2 : 98%, BPM : 75")
	if r.SpO2 == nil || *r.SpO2 != 98 {
		t.Errorf("expected spo2 98, got %v", r.SpO2)
	}
	if r.HeartRate == nil || *r.HeartRate != 75 {
		t.Errorf("expected heart rate 75, got %v", r.HeartRate)
	}
}

func TestParseSpO2_IndependentFields(t *testing.T) {
	r := ParseSpO2("SpO2 : 97%")
	if r.SpO2 == nil || *r.SpO2 != 97 {
		t.Errorf("expected spo2 97, got %v", r.SpO2)
	}
	if r.HeartRate != nil {
		t.Errorf("expected absent heart rate, got %v", r.HeartRate)
	}

	r = ParseSpO2("BPM : 64")
	if r.SpO2 != nil {
		t.Errorf("expected absent spo2, got %v", r.SpO2)
	}
	if r.HeartRate == nil || *r.HeartRate != 64 {
		t.Errorf("expected heart rate 64, got %v", r.HeartRate)
	}
}

func TestParseSpO2_RequiresPercentSign(t *testing.T) {
	r := ParseSpO2("SpO2 : 98")
	if r.SpO2 != nil {
		t.Errorf("expected absent spo2 without percent sign, got %v", r.SpO2)
	}
}

func TestParseTemperature(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"37.5°C", 37.5},
		{"36.8", 36.8},
		{"Temp : 38.2 °C", 38.2},
		{"40°c", 40},
		{"37", 37},
	}
	for _, tc := range cases {
		got := ParseTemperature(tc.in)
		if got == nil {
			t.Errorf("ParseTemperature(%q) = nil, want %v", tc.in, tc.want)
			continue
		}
		if *got != tc.want {
			t.Errorf("ParseTemperature(%q) = %v, want %v", tc.in, *got, tc.want)
		}
	}
}

func TestParseTemperature_AbsentNotZero(t *testing.T) {
	for _, in := range []string{"", "°C", "no reading", "error"} {
		if got := ParseTemperature(in); got != nil {
			t.Errorf("ParseTemperature(%q) = %v, want nil", in, *got)
		}
	}
}
