// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNameLength     = 100
	maxEmailLength    = 150
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
	cnpLength         = 13
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// cnpWeights are the control weights applied to the first 12 CNP digits.
var cnpWeights = [cnpLength - 1]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > max
}

// isEmail accepts a bare address only ("a@b.c"), not "Name <a@b.c>".
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || tooLong(s, maxEmailLength) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return strings.Contains(s[at+1:], ".")
}

// IsValidCNP reports whether cnp is a 13-digit Romanian personal numeric
// code whose last digit matches the weighted control sum.
func IsValidCNP(cnp string) bool {
	if len(cnp) != cnpLength {
		return false
	}
	sum := 0
	for i := 0; i < cnpLength; i++ {
		if cnp[i] < '0' || cnp[i] > '9' {
			return false
		}
		if i < cnpLength-1 {
			sum += int(cnp[i]-'0') * cnpWeights[i]
		}
	}
	if cnp[0] == '0' {
		return false
	}
	control := sum % 11
	if control == 10 {
		control = 1
	}
	return int(cnp[cnpLength-1]-'0') == control
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
