package entities

import (
	"strings"
	"unicode"
)

const (
	// portugueseAccents are never reported, even though they are above the ASCII range.
	portugueseAccents = "áéíóúâêîôûàèìòùãẽĩõũçÁÉÍÓÚÂÊÎÔÛÀÈÌÒÙÃẼĨÕŨÇ"
)

// ScanRules holds the fixed traversal and classification rules of a scan.
type ScanRules struct {
	suffixes    []string
	prunedDirs  []string
	allowed     []rune
	allowedSet  map[rune]struct{}
	prunedIndex map[string]struct{}
}

// NewScanRules creates the rule set: script suffixes, pruned directories, and the accent allow-list.
func NewScanRules() ScanRules {
	rules := ScanRules{
		suffixes:    []string{".ts", ".tsx", ".js", ".jsx"},
		prunedDirs:  []string{"node_modules", ".git", "dist"},
		allowed:     []rune(portugueseAccents),
		allowedSet:  make(map[rune]struct{}),
		prunedIndex: make(map[string]struct{}),
	}
	for _, ch := range rules.allowed {
		rules.allowedSet[ch] = struct{}{}
	}
	for _, name := range rules.prunedDirs {
		rules.prunedIndex[name] = struct{}{}
	}
	return rules
}

// Suffixes returns the recognized file name suffixes.
func (r ScanRules) Suffixes() []string {
	return append([]string(nil), r.suffixes...)
}

// PrunedDirs returns the directory names that are never descended into.
func (r ScanRules) PrunedDirs() []string {
	return append([]string(nil), r.prunedDirs...)
}

// AllowList returns the allow-listed characters in declaration order.
func (r ScanRules) AllowList() []rune {
	return append([]rune(nil), r.allowed...)
}

// IsEligible reports whether a file name ends with a recognized suffix (case-sensitive).
func (r ScanRules) IsEligible(name string) bool {
	for _, suffix := range r.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// IsPruned reports whether a directory with this base name must be skipped.
func (r ScanRules) IsPruned(name string) bool {
	_, ok := r.prunedIndex[name]
	return ok
}

// IsAllowListed reports whether ch is one of the exempted accented letters.
func (r ScanRules) IsAllowListed(ch rune) bool {
	_, ok := r.allowedSet[ch]
	return ok
}

// IsReportable reports whether ch is above the 7-bit ASCII range and not allow-listed.
func (r ScanRules) IsReportable(ch rune) bool {
	return ch > unicode.MaxASCII && !r.IsAllowListed(ch)
}
