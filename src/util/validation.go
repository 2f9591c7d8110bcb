package util

import (
	"regexp"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/models"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func ValidateMonth(month string) bool {
	return monthRe.MatchString(month)
}

func ValidateDecision(decision string) bool {
	switch decision {
	case models.DecisionApply, models.DecisionDefer, models.DecisionWrong:
		return true
	}
	return false
}

func ValidateLearningScope(scope string) bool {
	switch scope {
	case models.ScopeNone, models.ScopePattern, models.ScopeCategory:
		return true
	}
	return false
}
