package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/almagest-io/skymatch/pkg/catalogs"
	"github.com/almagest-io/skymatch/pkg/errors"
)

// readCatalog loads a coordinate list: one source per line, right ascension
// and declination in degrees, whitespace separated. Blank lines and '#'
// comments are skipped. Line order defines source indices.
func readCatalog(path string) (*catalogs.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	defer f.Close()

	var positions []catalogs.Position
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.NewParseError(path, lineNo,
				fmt.Sprintf("expected two fields (ra dec), got %d", len(fields)), nil)
		}

		ra, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.NewParseError(path, lineNo, "invalid right ascension", err)
		}
		dec, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.NewParseError(path, lineNo, "invalid declination", err)
		}

		positions = append(positions, catalogs.Position{RA: ra, Dec: dec})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", path, err)
	}

	return catalogs.New(positions...)
}
