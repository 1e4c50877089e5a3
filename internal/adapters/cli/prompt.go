package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func (m *Menu) promptLine(label string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) promptString(label string) string {
	line, _ := m.promptLine(label)
	return line
}

func (m *Menu) promptInt(label string) (int, error) {
	line, err := m.promptLine(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

// promptAmount reads a decimal money value ("12.50") and returns cents.
func (m *Menu) promptAmount(label string) (int, error) {
	line, err := m.promptLine(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return int(value*100 + 0.5), nil
}

func (m *Menu) promptDate(label string) (time.Time, error) {
	line, err := m.promptLine(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse("2006-01-02", line)
}

func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
