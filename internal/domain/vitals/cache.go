package vitals

import (
	"fmt"
	"sync"
)

// Cache holds the most recent reading per channel. It is constructed at
// server start and passed into the handlers; it is process-local and not
// durable. One mutex guards the whole cache so a reset can never interleave
// field-by-field with a concurrent record or snapshot.
type Cache struct {
	mu      sync.Mutex
	bpRaw   string
	spo2Raw string
	spo2    *int
	// heartRate is shared by the blood-pressure and SpO2 channels.
	// Whichever channel extracted a rate most recently wins.
	heartRate *int
	celsius   *float64
}

func NewCache() *Cache {
	return &Cache{}
}

// Values is a point-in-time copy of the numeric cache state, taken under
// the cache lock.
type Values struct {
	SpO2      *int
	HeartRate *int
	Celsius   *float64
}

// Combined is the read projection served by the latest-readings endpoint.
type Combined struct {
	BP   string `json:"bp"`
	SpO2 string `json:"spo2"`
	Temp string `json:"temp"`
}

// RecordBloodPressure stores the raw payload and, for a final reading,
// folds an extracted heart rate into the shared slot. The returned Values
// snapshot is taken in the same critical section, so a finalizing caller
// sees a consistent cross-channel state.
func (c *Cache) RecordBloodPressure(text string) (BloodPressureReading, Values) {
	r := ParseBloodPressure(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bpRaw = text
	if r.IsFinal && r.HeartRate != nil {
		c.heartRate = r.HeartRate
	}
	return r, c.valuesLocked()
}

// RecordSpO2 stores the raw payload and overwrites the cached saturation
// and heart rate with whatever was extracted. A pattern miss clears the
// corresponding slot; the two fields are independent.
func (c *Cache) RecordSpO2(text string) SpO2Reading {
	r := ParseSpO2(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spo2Raw = text
	c.spo2 = r.SpO2
	c.heartRate = r.HeartRate
	return r
}

// RecordTemperature updates the cached celsius value when extraction
// succeeds. On a parse miss the previous value is kept: a stale reading on
// the results screen beats blanking it out.
func (c *Cache) RecordTemperature(text string) *float64 {
	v := ParseTemperature(text)
	if v == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.celsius = v
	return v
}

// Values returns a copy of the current numeric state.
func (c *Cache) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valuesLocked()
}

func (c *Cache) valuesLocked() Values {
	return Values{
		SpO2:      copyInt(c.spo2),
		HeartRate: copyInt(c.heartRate),
		Celsius:   copyFloat(c.celsius),
	}
}

// Snapshot builds the combined projection. Temperature is rendered as
// "Temp : <v>°C" to match what the device app displays, or empty when no
// reading has arrived.
func (c *Cache) Snapshot() Combined {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Combined{
		BP:   c.bpRaw,
		SpO2: c.spo2Raw,
	}
	if c.celsius != nil {
		snap.Temp = fmt.Sprintf("Temp : %v°C", *c.celsius)
	}
	return snap
}

// Reset clears every slot. Called between patients; persisted records are
// unaffected.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bpRaw = ""
	c.spo2Raw = ""
	c.spo2 = nil
	c.heartRate = nil
	c.celsius = nil
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
