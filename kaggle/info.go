package kaggle

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var ErrBadMoves = errors.New("bad allowed_moves")

// MoveSet is the ordered move catalogue of one puzzle type.
type MoveSet struct {
	Names    []string
	Mappings [][]int
}

// Info maps puzzle types to their move catalogues.
type Info map[string]*MoveSet

// ReadInfo reads puzzle_info.csv.
func ReadInfo(r io.Reader) (Info, error) {
	t, err := readTable(r, "puzzle_type", "allowed_moves")
	if err != nil {
		return nil, err
	}
	res := make(Info, len(t.rows))
	for i, row := range t.rows {
		typ := t.get(row, "puzzle_type")
		ms, err := ParseMoves(t.get(row, "allowed_moves"))
		if err != nil {
			return nil, fmt.Errorf("%w %d: %s: %w", ErrBadRow, i+2, typ, err)
		}
		res[typ] = ms
	}
	return res, nil
}

// ParseMoves parses an allowed_moves dictionary literal, keeping key order.
func ParseMoves(src string) (*MoveSet, error) {
	var items yaml.MapSlice
	if err := yaml.Unmarshal([]byte(src), &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMoves, err)
	}
	ms := &MoveSet{
		Names:    make([]string, 0, len(items)),
		Mappings: make([][]int, 0, len(items)),
	}
	for _, item := range items {
		name, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: move name %v is %T", ErrBadMoves, item.Key, item.Key)
		}
		mapping, err := toInts(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: move %q: %w", ErrBadMoves, name, err)
		}
		ms.Names = append(ms.Names, name)
		ms.Mappings = append(ms.Mappings, mapping)
	}
	return ms, nil
}

func toInts(v any) ([]int, error) {
	xs, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("mapping is %T, not a list", v)
	}
	res := make([]int, len(xs))
	for i, x := range xs {
		switch n := x.(type) {
		case uint64:
			res[i] = int(n)
		case int64:
			res[i] = int(n)
		case int:
			res[i] = n
		case float64:
			if n != float64(int(n)) {
				return nil, fmt.Errorf("entry %d: %v is not an integer", i, n)
			}
			res[i] = int(n)
		default:
			return nil, fmt.Errorf("entry %d: %v is %T", i, x, x)
		}
	}
	return res, nil
}
