/*
Package console implements the interactive text menu used at the rental
desk. Every prompt keeps asking until it gets an acceptable answer; the
end of input ends the session.
*/
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flexprice/vanrental/internal/api/dto"
	"github.com/flexprice/vanrental/internal/domain/rental"
	"github.com/flexprice/vanrental/internal/domain/vehicle"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/shopspring/decimal"
)

const (
	menuBorder        = "=================================================="
	menuLineFormat    = "| %-47s|\n"
	invalidNumberMsg  = "Invalid input. Please enter a number."
	invalidDecimalMsg = "Invalid number. Please try again."
	negativeValueMsg  = "Value must not be negative."
	outOfRangeMsg     = "Value is out of range. Use at most 9 digits and 18 decimal places."
)

// Prompter reads answers line by line and writes prompts and feedback
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine returns the next trimmed line, or io.EOF once input is exhausted
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Prompter) Error(message string) {
	p.Println("Error: " + message)
}

func (p *Prompter) Banner() {
	p.Println()
	p.Println(menuBorder)
	p.Println("|            Jeff's Car Rental                   |")
	p.Println(menuBorder)
	p.Println()
}

func (p *Prompter) Menu() {
	p.Println(menuBorder)
	p.Printf(menuLineFormat, "Please select an option:")
	p.Println(menuBorder)
	p.Printf(menuLineFormat, "")
	for _, entry := range menuEntries {
		p.Printf(menuLineFormat, entry.label)
	}
	p.Printf(menuLineFormat, "")
	p.Println(menuBorder)
	p.Println()
}

// MenuChoice asks until one of the listed options is chosen
func (p *Prompter) MenuChoice() (MenuOption, error) {
	for {
		line, err := p.readLine("Choose an option: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			p.Println(invalidNumberMsg)
			continue
		}
		if MenuOption(choice).IsValid() {
			return MenuOption(choice), nil
		}
		p.Println("Invalid option. Please enter a number between 0 and " + strconv.Itoa(int(maxMenuOption)) + ".")
	}
}

// PromptForRental collects one rental's usage facts
func (p *Prompter) PromptForRental() (dto.CreateRentalRequest, error) {
	p.Println()
	p.Println("--- Add New Rental ---")

	category, err := p.vehicleCategory()
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}
	profile := vehicle.MustGet(category)

	distance, err := p.nonNegativeDecimal("Kilometers driven: ")
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}
	energy, err := p.nonNegativeDecimal("Energy consumed (" + profile.EnergyUnit + "): ")
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}
	vignette, err := p.yesNo("Motorway vignette? (y/n): ")
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}
	passages, err := p.nonNegativeInt("Gubrist tunnel passages: ")
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}
	cityDistance, err := p.cityDistance(distance)
	if err != nil {
		return dto.CreateRentalRequest{}, err
	}

	return dto.CreateRentalRequest{
		VehicleCategory:  category,
		Distance:         distance.String(),
		EnergyConsumed:   energy.String(),
		MotorwayVignette: vignette,
		TunnelPassages:   passages,
		CityDistance:     cityDistance.String(),
	}, nil
}

// SelectRental lists rentals and returns the chosen 1-based position
func (p *Prompter) SelectRental(rentals []*rental.Rental) (int, error) {
	p.Println()
	p.Println("--- Select Rental ---")
	for i, r := range rentals {
		p.Printf("%d - %s, %s km\n", i+1, vehicle.MustGet(r.Category()).DisplayName, types.FormatQuantity(r.Distance()))
	}
	p.Println()

	return p.numberInRange("Select rental number: ", len(rentals))
}

func (p *Prompter) vehicleCategory() (types.VehicleCategory, error) {
	profiles := vehicle.List()
	p.Println("Vehicle type:")
	for i, profile := range profiles {
		p.Printf("  %d - %s\n", i+1, profile.DisplayName)
	}

	choice, err := p.numberInRange("Choose vehicle type: ", len(profiles))
	if err != nil {
		return "", err
	}
	return profiles[choice-1].Category, nil
}

func (p *Prompter) numberInRange(prompt string, upper int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			p.Println(invalidNumberMsg)
			continue
		}
		if choice >= 1 && choice <= upper {
			return choice, nil
		}
		p.Printf("Invalid selection. Enter a number between 1 and %d.\n", upper)
	}
}

func (p *Prompter) nonNegativeDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		value, err := decimal.NewFromString(line)
		if err != nil {
			p.Println(invalidDecimalMsg)
			continue
		}
		if !types.QuantityInRange(value) {
			p.Println(outOfRangeMsg)
			continue
		}
		if value.IsNegative() {
			p.Println(negativeValueMsg)
			continue
		}
		return value, nil
	}
}

func (p *Prompter) nonNegativeInt(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			p.Println(invalidDecimalMsg)
			continue
		}
		if value < 0 {
			p.Println(negativeValueMsg)
			continue
		}
		return value, nil
	}
}

func (p *Prompter) yesNo(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Println("Please enter 'y' or 'n'.")
	}
}

// cityDistance only re-asks for the city share when it exceeds the total
func (p *Prompter) cityDistance(total decimal.Decimal) (decimal.Decimal, error) {
	for {
		cityDistance, err := p.nonNegativeDecimal("City kilometers: ")
		if err != nil {
			return decimal.Zero, err
		}
		if cityDistance.LessThanOrEqual(total) {
			return cityDistance, nil
		}
		p.Printf("City kilometers must not exceed total kilometers (%s km).\n", types.FormatQuantity(total))
	}
}
