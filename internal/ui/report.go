package ui

import (
	"fmt"
	"strings"
)

const (
	checkMark = "✅" // green check
	crossMark = "❌" // red X
	warnMark  = "⚠️" // warning sign
)

// Header renders a titled double-rule header.
func Header(title string) string {
	var b strings.Builder
	b.WriteString("\n")
	if IsInteractiveTTY() {
		b.WriteString(titleStyle.Render(title))
	} else {
		b.WriteString(title)
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n")
	return b.String()
}

// Section renders a section label with a light rule.
func Section(title string) string {
	var b strings.Builder
	b.WriteString("\n")
	if IsInteractiveTTY() {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(strings.Repeat("─", 35)))
	} else {
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", 35))
	}
	b.WriteString("\n")
	return b.String()
}

// Row renders a pass/fail check row.
func Row(name string, ok bool, extra string) string {
	indicator := checkMark
	if !ok {
		indicator = crossMark
	}
	if extra != "" {
		return fmt.Sprintf("%s %-30s %s", indicator, name, extra)
	}
	return fmt.Sprintf("%s %s", indicator, name)
}

// Warn renders a warning line.
func Warn(msg string) string {
	line := fmt.Sprintf("%s  %s", warnMark, msg)
	if IsInteractiveTTY() {
		return warnStyle.Render(line)
	}
	return line
}

// Fail renders a hard-failure line.
func Fail(msg string) string {
	line := fmt.Sprintf("%s %s", crossMark, msg)
	if IsInteractiveTTY() {
		return failStyle.Render(line)
	}
	return line
}

// Pass renders a success line.
func Pass(msg string) string {
	line := fmt.Sprintf("%s %s", checkMark, msg)
	if IsInteractiveTTY() {
		return passStyle.Render(line)
	}
	return line
}

// Dim renders a low-emphasis hint line.
func Dim(msg string) string {
	if IsInteractiveTTY() {
		return dimStyle.Render(msg)
	}
	return msg
}

// Summary renders a passed/total line.
func Summary(passed, total int) string {
	line := fmt.Sprintf("Validation Results: %d/%d checks passed", passed, total)
	if !IsInteractiveTTY() {
		return line
	}
	if passed == total {
		return passStyle.Render(line)
	}
	return warnStyle.Render(line)
}
