package battleship_test

import (
	"errors"
	"testing"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

func mustParse(t *testing.T, text string) mb.Coordinates {
	t.Helper()
	c, err := mb.ParseCoordinates(text, mb.DefaultGridSize)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", text, err)
	}
	return c
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expected    mb.Coordinates
		expectedErr error
	}{
		{name: "top left", text: "A1", expected: mb.NewCoordinates(0, 0)},
		{name: "bottom right", text: "J10", expected: mb.NewCoordinates(9, 9)},
		{name: "lower case", text: "c7", expected: mb.NewCoordinates(2, 6)},
		{name: "surrounding whitespace", text: "  E5 \n", expected: mb.NewCoordinates(4, 4)},
		{name: "row past J", text: "K1", expectedErr: cerr.ErrOutOfRange},
		{name: "column past 10", text: "A11", expectedErr: cerr.ErrOutOfRange},
		{name: "column zero", text: "A0", expectedErr: cerr.ErrOutOfRange},
		{name: "huge column", text: "A99999999999999999999999", expectedErr: cerr.ErrOutOfRange},
		{name: "empty", text: "", expectedErr: cerr.ErrInvalidFormat},
		{name: "letter only", text: "A", expectedErr: cerr.ErrInvalidFormat},
		{name: "digit row", text: "11", expectedErr: cerr.ErrInvalidFormat},
		{name: "non numeric column", text: "AB", expectedErr: cerr.ErrInvalidFormat},
		{name: "negative column", text: "A-1", expectedErr: cerr.ErrInvalidFormat},
		{name: "two tokens", text: "A1 A2", expectedErr: cerr.ErrInvalidFormat},
		{name: "trailing garbage", text: "A1x", expectedErr: cerr.ErrInvalidFormat},
		{name: "dotless i row", text: "ı5", expectedErr: cerr.ErrInvalidFormat},
		{name: "non ascii row", text: "Ä1", expectedErr: cerr.ErrInvalidFormat},
		{name: "long s row", text: "ſ2", expectedErr: cerr.ErrInvalidFormat},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := mb.ParseCoordinates(test.text, mb.DefaultGridSize)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error: %v\tgot: %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.expected {
				t.Fatalf("expected coordinates: %+v\tgot: %+v", test.expected, got)
			}
		})
	}
}

func TestParseCoordinatesSmallGrid(t *testing.T) {
	if _, err := mb.ParseCoordinates("E1", 4); !errors.Is(err, cerr.ErrOutOfRange) {
		t.Fatalf("expected out of range on a 4x4 grid\tgot: %v", err)
	}
	if _, err := mb.ParseCoordinates("D4", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCoordinatesString(t *testing.T) {
	for _, text := range []string{"A1", "B7", "J10"} {
		if got := mustParse(t, text).String(); got != text {
			t.Fatalf("expected: %s\tgot: %s", text, got)
		}
	}
}
