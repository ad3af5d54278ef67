// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/adl-tools/candex/pkg/types"
)

// candidateLineRe is the whole-line candidate grammar:
//
//	<TOKEN>  <NAME-WORDS>  <DECISION>
//
// The token is one or more characters from [A-Z0-9]. Name words are Latin
// letters including the French accented vowels and cedilla. The decision
// keyword is matched case-insensitively and anchored at end of line. Both
// ends are anchored: a line with extraneous leading or trailing characters
// fails entirely, there is no partial extraction.
var candidateLineRe = regexp.MustCompile(
	`^([A-Z0-9]+)\s+([A-Za-zÀÂÄÇÉÈÊËÎÏÔÖÙÛÜŒÆàâäçéèêëîïôöùûüœæ\s]+)\s+((?i:ADMISSIBLE|NON-ADMISSIBLE))$`,
)

// ParseCandidateLine matches line against the candidate grammar and builds a
// record tagged with category. A non-matching line returns ok=false; the
// parser never fails with an error, the caller decides whether a miss is
// worth reporting.
func ParseCandidateLine(line string, category types.Category) (types.CandidateRecord, bool) {
	m := candidateLineRe.FindStringSubmatch(line)
	if m == nil {
		return types.CandidateRecord{}, false
	}

	nameWords := strings.Fields(m[2])
	if len(nameWords) == 0 {
		// Unreachable given the grammar requires at least one name word,
		// handled anyway so a regex change cannot produce a nameless record.
		return types.CandidateRecord{}, false
	}

	return types.CandidateRecord{
		Category:        category,
		CandidateNumber: strings.TrimSpace(m[1]),
		FirstName:       nameWords[0],
		LastName:        strings.Join(nameWords[1:], " "),
		Decision:        normalizeDecision(m[3]),
	}, true
}

// normalizeDecision uppercases the matched keyword and maps the hyphenated
// NON-ADMISSIBLE spelling used in the source document onto the canonical
// decision value.
func normalizeDecision(raw string) types.Decision {
	d := strings.ToUpper(strings.TrimSpace(raw))
	if d == "NON-ADMISSIBLE" {
		return types.DecisionNonAdmissible
	}
	return types.Decision(d)
}
