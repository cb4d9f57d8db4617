package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hireloop/identity/internal/onboarding"
	"github.com/thoas/go-funk"
)

var listFields = []string{
	onboarding.FieldSkills,
	onboarding.FieldDesiredTitles,
	onboarding.FieldDesiredLocations,
}

var intFields = []string{
	onboarding.FieldYearsExperience,
	onboarding.FieldDesiredSalaryMin,
	onboarding.FieldDesiredSalaryMax,
}

var boolFields = []string{
	onboarding.FieldOpenToRemote,
}

// parseAssignments turns key=value arguments into profile fields. List
// fields take comma separated values, numeric and boolean fields are parsed
// and everything else is kept as a string.
func parseAssignments(args []string) (onboarding.ProfileData, error) {
	data := onboarding.ProfileData{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected key=value", arg)
		}
		if key == onboarding.FieldResumeFile {
			return nil, fmt.Errorf("use attach-resume to attach a file")
		}

		switch {
		case funk.ContainsString(listFields, key):
			items := []string{}
			for _, item := range strings.Split(value, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
			data[key] = items
		case funk.ContainsString(intFields, key):
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%s must be a whole number, got %q", key, value)
			}
			data[key] = n
		case funk.ContainsString(boolFields, key):
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
			}
			data[key] = b
		default:
			data[key] = value
		}
	}
	return data, nil
}

// principalFromToken reads the identity claims of the credential without
// verifying it; the API does the verification. Opaque tokens become the
// user id.
func principalFromToken(token string) onboarding.Principal {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return onboarding.Principal{UserID: token}
	}

	claim := func(name string) string {
		v, _ := claims[name].(string)
		return v
	}
	return onboarding.Principal{
		UserID:    claim("sub"),
		Email:     claim("email"),
		FirstName: claim("given_name"),
		LastName:  claim("family_name"),
	}
}
