package timeslot

import "testing"

func TestParseClock(t *testing.T) {
	valid := map[string]Clock{
		"00:00": 0,
		"08:05": 8*60 + 5,
		"10:30": 10*60 + 30,
		"23:59": 23*60 + 59,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseClock(%q) = %d, want %d", in, got, want)
		}
		if got.String() != in {
			t.Errorf("Clock(%d).String() = %q, want %q", got, got.String(), in)
		}
	}

	invalid := []string{"", "24:00", "12:60", "9:00", "12:5", "ab:cd", "12.30", "12:30:00", " 12:30"}
	for _, in := range invalid {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) expected error, got nil", in)
		}
	}
}

func TestNewIntervalRejectsInvertedRange(t *testing.T) {
	if _, err := NewInterval("11:00", "10:00"); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := NewInterval("10:00", "10:00"); err == nil {
		t.Error("expected error for zero-length range")
	}
}

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("NewInterval(%q, %q): %v", start, end, err)
	}
	return iv
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{"identical", [2]string{"10:00", "11:00"}, [2]string{"10:00", "11:00"}, true},
		{"partial overlap", [2]string{"10:00", "11:00"}, [2]string{"10:30", "11:30"}, true},
		{"strict containment", [2]string{"10:00", "11:00"}, [2]string{"10:30", "10:45"}, true},
		{"containing interval", [2]string{"10:30", "10:45"}, [2]string{"10:00", "11:00"}, true},
		{"shared start", [2]string{"10:00", "11:00"}, [2]string{"10:00", "10:15"}, true},
		{"touching end to start", [2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}, false},
		{"touching start to end", [2]string{"10:00", "11:00"}, [2]string{"09:00", "10:00"}, false},
		{"disjoint", [2]string{"08:00", "09:00"}, [2]string{"12:00", "13:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustInterval(t, tt.a[0], tt.a[1])
			b := mustInterval(t, tt.b[0], tt.b[1])
			if got := a.Overlaps(b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", a, b, got, tt.want)
			}
			// overlap is symmetric
			if got := b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", b, a, got, tt.want)
			}
		})
	}
}

func TestParseSlotRange(t *testing.T) {
	iv, err := ParseSlotRange("08:00-09:30")
	if err != nil {
		t.Fatalf("ParseSlotRange: %v", err)
	}
	if iv.Start.String() != "08:00" || iv.End.String() != "09:30" {
		t.Errorf("ParseSlotRange = %v, want 08:00-09:30", iv)
	}

	for _, in := range []string{"", "08:00", "08:00_09:30", "09:30-08:00", "08:00-08:00", "8:00-9:30"} {
		if _, err := ParseSlotRange(in); err == nil {
			t.Errorf("ParseSlotRange(%q) expected error", in)
		}
	}
}
