package uid

import "testing"

func TestRequiresAction(t *testing.T) {
	ours := UID{Manufacturer: 0x7a70, Device: 0x12345678}
	tests := []struct {
		name string
		dest UID
		want bool
	}{
		{"exact match", ours, true},
		{"broadcast", Broadcast, true},
		{"manufacturer broadcast", ManufacturerBroadcast(0x7a70), true},
		{"other manufacturer broadcast", ManufacturerBroadcast(0x1234), false},
		{"other device", UID{Manufacturer: 0x7a70, Device: 1}, false},
	}
	for _, tc := range tests {
		if got := RequiresAction(ours, tc.dest); got != tc.want {
			t.Errorf("%s: RequiresAction = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWithin(t *testing.T) {
	lower := UID{Manufacturer: 0x7a70, Device: 0}
	upper := UID{Manufacturer: 0x7a70, Device: 0xffffffff}
	u := UID{Manufacturer: 0x7a70, Device: 0x12345678}
	if !u.Within(lower, upper) {
		t.Fatal("expected u within [lower, upper]")
	}
	outside := UID{Manufacturer: 0x7a71, Device: 0}
	if outside.Within(lower, upper) {
		t.Fatal("expected outside UID to not be within range")
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	u := UID{Manufacturer: 0x7a70, Device: 0x12345678}
	var buf [Size]byte
	Encode(buf[:], u)
	got, err := Decode(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Errorf("got %v, want %v", got, u)
	}
}

func TestDUBResponseRoundtrip(t *testing.T) {
	u := UID{Manufacturer: 0x7a70, Device: 0x12345678}
	var buf [DUBResponseSize]byte
	EncodeDUBResponse(buf[:], u)

	for i := 0; i < 7; i++ {
		if buf[i] != 0xfe {
			t.Fatalf("preamble byte %d = %#x, want 0xfe", i, buf[i])
		}
	}
	if buf[7] != 0xaa {
		t.Fatalf("separator = %#x, want 0xaa", buf[7])
	}
	for i, b := range buf[8:] {
		if i%2 == 0 {
			if b&0xaa != 0xaa {
				t.Errorf("even byte %d = %#x, missing 0xAA mask", i, b)
			}
		} else {
			if b&0x55 != 0x55 {
				t.Errorf("odd byte %d = %#x, missing 0x55 mask", i, b)
			}
		}
	}

	got, err := DecodeDUBResponse(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if got != u {
		t.Errorf("got %v, want %v", got, u)
	}
}

func TestDUBResponseChecksumMismatch(t *testing.T) {
	u := UID{Manufacturer: 0x7a70, Device: 0x12345678}
	var buf [DUBResponseSize]byte
	EncodeDUBResponse(buf[:], u)
	buf[len(buf)-1] ^= 0xff
	if _, err := DecodeDUBResponse(buf[:]); err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}
