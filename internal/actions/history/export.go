package history

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
)

var csvHeader = []string{"id", "at", "source", "success", "result", "line", "error"}

var encoders = map[string]func([]domain.HistoryEntry) ([]byte, error){
	"json": encodeJSON,
	"yaml": encodeYAML,
	"csv":  encodeCSV,
}

// Formats lists the export formats in a stable order.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Export writes the whole history, oldest first, in the chosen format.
func Export(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		name, err := arguments.GetString(ctx, "format")
		if err != nil {
			return 0, err
		}
		out, err := dispatchers.OptionOr(ctx, "out", "")
		if err != nil {
			return 0, err
		}

		entries, err := deps.Store.History(domain.HistoryFilter{})
		if err != nil {
			return 0, fmt.Errorf("history export: %w", err)
		}
		slices.Reverse(entries)

		data, err := encoders[name](entries)
		if err != nil {
			return 0, fmt.Errorf("history export %s: %w", name, err)
		}

		if out == "" {
			_, _ = s.Out().Write(data)
			return len(entries), nil
		}
		if err := deps.WriteFile(out, data); err != nil {
			return 0, fmt.Errorf("history export: %w", err)
		}
		s.Success("Exported %d entries to %s", len(entries), out)
		return len(entries), nil
	}
}

func encodeJSON(entries []domain.HistoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeYAML(entries []domain.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCSV(entries []domain.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		row := []string{
			e.ID.String(),
			e.At.UTC().Format(time.RFC3339),
			e.Source,
			strconv.FormatBool(e.Success),
			strconv.Itoa(e.Result),
			e.Line,
			e.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
