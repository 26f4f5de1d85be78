// Package main provides a CLI for validating and generating Italian tax
// identifiers: codice fiscale and partita IVA. The process exit code reports
// the outcome (0 valid, 1 invalid), so the tool composes in shell pipelines.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"fisco/internal/codicefiscale"
	"fisco/internal/comuni"
	"fisco/internal/partitaiva"
)

func main() {
	// Subcommands
	validateCFCmd := flag.NewFlagSet("validate-cf", flag.ExitOnError)
	validatePIVACmd := flag.NewFlagSet("validate-piva", flag.ExitOnError)
	generateCFCmd := flag.NewFlagSet("generate-cf", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search-municipality", flag.ExitOnError)

	// validate-cf flags
	cfCheckAdult := validateCFCmd.Bool("check-adult", false, "Require the subject to meet the minimum age")
	cfMinimumAge := validateCFCmd.Int("minimum-age", 0, "Minimum age to require (default 18 when check-adult is set)")
	cfJSON := validateCFCmd.Bool("json", false, "Output as JSON")

	// validate-piva flags
	pivaJSON := validatePIVACmd.Bool("json", false, "Output as JSON")

	// generate-cf flags
	genSurname := generateCFCmd.String("surname", "", "Surname")
	genName := generateCFCmd.String("name", "", "Given name")
	genBirthdate := generateCFCmd.String("birthdate", "", "Birthdate (YYYY-MM-DD)")
	genSex := generateCFCmd.String("gender", "", "Gender (M or F)")
	genPlaceCode := generateCFCmd.String("birth-place-code", "", "Cadastral code of the birth place (e.g. H501)")
	genPlace := generateCFCmd.String("birth-place", "", "Municipality name, resolved to its cadastral code")
	genJSON := generateCFCmd.Bool("json", false, "Output as JSON")

	// search-municipality flags
	searchLimit := searchCmd.Int("limit", 20, "Maximum number of results")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate-cf":
		_ = validateCFCmd.Parse(os.Args[2:])
		runValidateCF(validateCFCmd.Arg(0), *cfCheckAdult, *cfMinimumAge, *cfJSON)
	case "validate-piva":
		_ = validatePIVACmd.Parse(os.Args[2:])
		runValidatePIVA(validatePIVACmd.Arg(0), *pivaJSON)
	case "generate-cf":
		_ = generateCFCmd.Parse(os.Args[2:])
		runGenerateCF(*genSurname, *genName, *genBirthdate, *genSex, *genPlaceCode, *genPlace, *genJSON)
	case "search-municipality":
		_ = searchCmd.Parse(os.Args[2:])
		runSearch(searchCmd.Arg(0), *searchLimit)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fisco - Validate and generate Italian tax identifiers

Usage:
  fisco <command> [flags] [argument]

Commands:
  validate-cf          Validate a codice fiscale and decode its fields
  validate-piva        Validate a partita IVA
  generate-cf          Generate a codice fiscale from personal data
  search-municipality  Search the municipality directory by partial name

Examples:
  # Validate a codice fiscale
  fisco validate-cf RSSMRA85M01H501Q

  # Validate and require adulthood
  fisco validate-cf -check-adult RSSMRA85M01H501Q

  # Validate with a custom minimum age
  fisco validate-cf -check-adult -minimum-age 21 RSSMRA85M01H501Q

  # Validate a partita IVA
  fisco validate-piva 12345678903

  # Generate a codice fiscale
  fisco generate-cf -surname Rossi -name Mario -birthdate 1985-08-01 -gender M -birth-place Roma

  # Search municipalities
  fisco search-municipality -limit 5 san

Use "fisco <command> -h" for more information about a command.`)
}

func runValidateCF(value string, checkAdult bool, minimumAge int, jsonOutput bool) {
	if value == "" {
		fmt.Fprintln(os.Stderr, "Error: a codice fiscale argument is required")
		os.Exit(1)
	}

	places := comuni.New()
	codec := codicefiscale.New(places)

	res := codec.Validate(value, codicefiscale.ValidateOptions{
		RequireMinimumAge: checkAdult,
		MinimumAge:        minimumAge,
	})

	if jsonOutput {
		printJSON(map[string]any{
			"valid":                res.Valid,
			"error_kind":           string(res.ErrorKind),
			"value":                res.Value,
			"birthdate":            formatDate(res.Birthdate),
			"age":                  res.Age,
			"sex":                  string(res.Sex),
			"birth_place_code":     res.BirthPlaceCode,
			"birth_place_name":     res.BirthPlaceName,
			"birth_place_province": res.BirthPlaceProvince,
			"foreign_born":         res.ForeignBorn,
		})
	} else if res.Valid {
		fmt.Printf("✓ %s is valid\n", res.Value)
		fmt.Printf("  Birthdate:   %s\n", formatDate(res.Birthdate))
		fmt.Printf("  Age:         %d\n", res.Age)
		fmt.Printf("  Sex:         %s\n", res.Sex)
		printBirthPlace(res)
	} else {
		fmt.Printf("✗ %s is invalid: %s\n", res.Value, res.ErrorKind)
	}

	exitForOutcome(res.Valid)
}

func printBirthPlace(res codicefiscale.ValidationResult) {
	switch {
	case res.ForeignBorn:
		fmt.Printf("  Birth place: %s (foreign country)\n", res.BirthPlaceCode)
	case res.BirthPlaceName != "":
		fmt.Printf("  Birth place: %s (%s), code %s\n", res.BirthPlaceName, res.BirthPlaceProvince, res.BirthPlaceCode)
	default:
		fmt.Printf("  Birth place: code %s (not in directory)\n", res.BirthPlaceCode)
	}
}

func runValidatePIVA(value string, jsonOutput bool) {
	if value == "" {
		fmt.Fprintln(os.Stderr, "Error: a partita IVA argument is required")
		os.Exit(1)
	}

	res := partitaiva.Validate(value)

	if jsonOutput {
		printJSON(map[string]any{
			"valid":       res.Valid,
			"error_kind":  string(res.ErrorKind),
			"value":       res.Value,
			"office_code": res.OfficeCode,
			"temporary":   res.Temporary,
		})
	} else if res.Valid {
		fmt.Printf("✓ %s is valid\n", res.Value)
		fmt.Printf("  Office code: %s\n", res.OfficeCode)
		if res.Temporary {
			fmt.Println("  Temporary:   yes (provisional number)")
		}
	} else {
		fmt.Printf("✗ %s is invalid: %s\n", res.Value, res.ErrorKind)
	}

	exitForOutcome(res.Valid)
}

func runGenerateCF(surname, name, birthdate, sex, placeCode, place string, jsonOutput bool) {
	parsed, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -birthdate must be YYYY-MM-DD: %v\n", err)
		os.Exit(1)
	}

	places := comuni.New()

	if placeCode == "" && place != "" {
		code, err := places.ReverseLookup(place)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown municipality %q\n", place)
			printSuggestions(places.Search(place))
			os.Exit(1)
		}
		placeCode = code
	}

	codec := codicefiscale.New(places)
	res := codec.Generate(codicefiscale.PersonalRecord{
		Surname:        surname,
		GivenName:      name,
		Birthdate:      parsed,
		Sex:            codicefiscale.Sex(sex),
		BirthPlaceCode: placeCode,
	})

	if jsonOutput {
		printJSON(map[string]any{
			"valid":          res.Valid,
			"error_kind":     string(res.ErrorKind),
			"error_detail":   res.ErrorDetail,
			"codice_fiscale": res.CodiceFiscale,
		})
	} else if res.Valid {
		fmt.Println(res.CodiceFiscale)
	} else {
		fmt.Printf("✗ generation failed: %s", res.ErrorKind)
		if res.ErrorDetail != "" {
			fmt.Printf(" (%s)", res.ErrorDetail)
		}
		fmt.Println()
	}

	exitForOutcome(res.Valid)
}

func printSuggestions(matches []comuni.Municipality) {
	if len(matches) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "Did you mean:")
	for _, m := range matches {
		fmt.Fprintf(os.Stderr, "  %s (%s)\n", m.Name, m.Province)
	}
}

func runSearch(query string, limit int) {
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: a search query argument is required")
		os.Exit(1)
	}

	places := comuni.New()
	results := places.Search(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		fmt.Printf("no municipalities match %q\n", query)
		os.Exit(1)
	}
	for _, m := range results {
		fmt.Printf("%s  %s (%s)\n", m.Code, m.Name, m.Province)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func exitForOutcome(valid bool) {
	if !valid {
		os.Exit(1)
	}
}
