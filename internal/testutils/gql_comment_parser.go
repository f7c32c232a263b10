package testutils

import (
	"fmt"
	"regexp"
)

// FindTargetFileName returns the value of the mandatory "# target: <file>" directive.
func FindTargetFileName(t TestingT, source string) string {
	t.Helper()

	re, err := regexp.Compile("(?m)^# target:\\s*([^\\s]+)$")
	if err != nil {
		t.Fatal(err)
	}

	ss := re.FindStringSubmatch(source)
	if len(ss) != 2 {
		t.Fatal("target file directive mismatch")
	}

	return ss[1]
}

func FindOptionString(t TestingT, optionName, source string) string {
	t.Helper()

	ss := findOption(t, optionName, source)
	if ss == nil {
		t.Logf("option %s value is not found", optionName)
		return ""
	}

	return ss[1]
}

func FindOptionBool(t TestingT, optionName, source string) bool {
	t.Helper()

	ss := findOption(t, optionName, source)
	if ss == nil {
		t.Logf("option %s value is not found", optionName)
		return false
	}

	return ss[1] == "true"
}

func findOption(t TestingT, optionName, source string) []string {
	t.Helper()

	pattern := fmt.Sprintf("(?m)^# option:%s:\\s*([^\\s]+)$", regexp.QuoteMeta(optionName))
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatal(err)
	}

	ss := re.FindStringSubmatch(source)
	if len(ss) != 2 {
		return nil
	}

	return ss
}
