package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_MenuChoice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected MenuOption
		output   string
	}{
		{name: "add rental", input: "1\n", expected: MenuAddRental},
		{name: "exit", input: "0\n", expected: MenuExit},
		{name: "csv export", input: "5\n", expected: MenuExportCSV},
		{name: "out of range then valid", input: "9\n2\n", expected: MenuCustomerReceipt, output: "Invalid option."},
		{name: "not a number then valid", input: "abc\n3\n", expected: MenuCompanySummary, output: "Invalid input. Please enter a number."},
		{name: "surrounding whitespace", input: "  4  \n", expected: MenuReferenceSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			choice, err := p.MenuChoice()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, choice)
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestPrompter_MenuChoice_EOF(t *testing.T) {
	p, _ := newTestPrompter("7\n")
	_, err := p.MenuChoice()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_PromptForRental(t *testing.T) {
	p, out := newTestPrompter("3\n95\n20\ny\n3\n0\n")

	req, err := p.PromptForRental()
	require.NoError(t, err)

	assert.Equal(t, types.VehicleCategoryEVan, req.VehicleCategory)
	assert.Equal(t, "95", req.Distance)
	assert.Equal(t, "20", req.EnergyConsumed)
	assert.True(t, req.MotorwayVignette)
	assert.Equal(t, 3, req.TunnelPassages)
	assert.Equal(t, "0", req.CityDistance)

	assert.Contains(t, out.String(), "--- Add New Rental ---")
	assert.Contains(t, out.String(), "  3 - E-Van")
	assert.Contains(t, out.String(), "Energy consumed (kWh): ")
}

func TestPrompter_PromptForRental_EnergyUnitFollowsVehicle(t *testing.T) {
	p, out := newTestPrompter("1\n40\n5\nn\n0\n0\n")

	req, err := p.PromptForRental()
	require.NoError(t, err)
	assert.Equal(t, types.VehicleCategoryCompactVan, req.VehicleCategory)
	assert.False(t, req.MotorwayVignette)
	assert.Contains(t, out.String(), "Energy consumed (L): ")
}

func TestPrompter_PromptForRental_Recovers(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		check  func(t *testing.T, distance, city string, vignette bool, passages int)
		output string
	}{
		{
			name:   "invalid vehicle type",
			input:  "7\nx\n2\n180\n15\nn\n0\n30\n",
			output: "Invalid selection. Enter a number between 1 and 3.",
			check: func(t *testing.T, distance, city string, _ bool, _ int) {
				assert.Equal(t, "180", distance)
				assert.Equal(t, "30", city)
			},
		},
		{
			name:   "negative kilometers",
			input:  "1\n-5\n40\n5\nn\n0\n0\n",
			output: "Value must not be negative.",
			check: func(t *testing.T, distance, _ string, _ bool, _ int) {
				assert.Equal(t, "40", distance)
			},
		},
		{
			name:   "not a number",
			input:  "1\nforty\n40\n5\nn\n0\n0\n",
			output: "Invalid number. Please try again.",
			check: func(t *testing.T, distance, _ string, _ bool, _ int) {
				assert.Equal(t, "40", distance)
			},
		},
		{
			name:   "huge exponent",
			input:  "1\n1e50000000\n40\n5\nn\n0\n0\n",
			output: "Value is out of range.",
			check: func(t *testing.T, distance, _ string, _ bool, _ int) {
				assert.Equal(t, "40", distance)
			},
		},
		{
			name:   "too precise city kilometers",
			input:  "1\n40\n5\nn\n0\n1e-40\n10\n",
			output: "Value is out of range.",
			check: func(t *testing.T, _, city string, _ bool, _ int) {
				assert.Equal(t, "10", city)
			},
		},
		{
			name:   "yes spelled out",
			input:  "1\n40\n5\nYES\n0\n0\n",
			check: func(t *testing.T, _, _ string, vignette bool, _ int) {
				assert.True(t, vignette)
			},
		},
		{
			name:   "no spelled out",
			input:  "1\n40\n5\nno\n0\n0\n",
			check: func(t *testing.T, _, _ string, vignette bool, _ int) {
				assert.False(t, vignette)
			},
		},
		{
			name:   "invalid yes no",
			input:  "1\n40\n5\nmaybe\ny\n0\n0\n",
			output: "Please enter 'y' or 'n'.",
			check: func(t *testing.T, _, _ string, vignette bool, _ int) {
				assert.True(t, vignette)
			},
		},
		{
			name:   "negative passages",
			input:  "1\n40\n5\nn\n-1\n2\n0\n",
			output: "Value must not be negative.",
			check: func(t *testing.T, _, _ string, _ bool, passages int) {
				assert.Equal(t, 2, passages)
			},
		},
		{
			name:   "fractional passages",
			input:  "1\n40\n5\nn\n1.5\n1\n0\n",
			output: "Invalid number. Please try again.",
			check: func(t *testing.T, _, _ string, _ bool, passages int) {
				assert.Equal(t, 1, passages)
			},
		},
		{
			name:   "city kilometers exceed total only re-asks city",
			input:  "1\n40\n5\nn\n0\n50\n10\n",
			output: "City kilometers must not exceed total kilometers (40 km).",
			check: func(t *testing.T, distance, city string, _ bool, _ int) {
				assert.Equal(t, "40", distance)
				assert.Equal(t, "10", city)
			},
		},
		{
			name:  "city kilometers equal to total",
			input: "1\n40\n5\nn\n0\n40\n",
			check: func(t *testing.T, _, city string, _ bool, _ int) {
				assert.Equal(t, "40", city)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			req, err := p.PromptForRental()
			require.NoError(t, err)
			tt.check(t, req.Distance, req.CityDistance, req.MotorwayVignette, req.TunnelPassages)
			assert.Contains(t, out.String(), tt.output)
		})
	}
}

func TestPrompter_PromptForRental_CityRepromptAsksOnce(t *testing.T) {
	p, out := newTestPrompter("1\n40\n5\nn\n0\n50\n10\n")
	_, err := p.PromptForRental()
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "Kilometers driven: "))
	assert.Equal(t, 2, strings.Count(out.String(), "City kilometers: "))
}

func TestPrompter_PromptForRental_EOF(t *testing.T) {
	p, _ := newTestPrompter("1\n40\n")
	_, err := p.PromptForRental()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_SelectRental(t *testing.T) {
	rentals := rental.ReferenceDay()

	p, out := newTestPrompter("0\n4\nfoo\n2\n")
	position, err := p.SelectRental(rentals)
	require.NoError(t, err)
	assert.Equal(t, 2, position)

	assert.Contains(t, out.String(), "1 - E-Van, 95 km")
	assert.Contains(t, out.String(), "2 - Compact Van, 40 km")
	assert.Contains(t, out.String(), "3 - Large Van, 180 km")
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid selection. Enter a number between 1 and 3."))
	assert.Contains(t, out.String(), "Invalid input. Please enter a number.")
}

func TestPrompter_Display(t *testing.T) {
	p, out := newTestPrompter("")
	p.Banner()
	p.Menu()
	p.Error("Something broke")

	text := out.String()
	assert.Contains(t, text, "Jeff's Car Rental")
	for _, entry := range menuEntries {
		assert.Contains(t, text, entry.label)
	}
	assert.Contains(t, text, fmt.Sprintf("| %-47s|", "0 - Exit"))
	assert.Contains(t, text, "Error: Something broke")
}
