package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"sqlite-header/dbheader"
)

// WriteText prints one line per field, in offset order.
func WriteText(w io.Writer, header dbheader.Header) error {
	lhm := dbheader.ToLinkedHashMap(header)
	for _, key := range lhm.Keys() {
		field, _ := dbheader.FieldByKey(key)
		value, _ := lhm.Get(key)
		if _, err := fmt.Fprintf(w, "> %s: %v\n", field.Description, value); err != nil {
			return errors.Wrap(err, "WriteText error")
		}
	}
	return nil
}

func WriteJSON(w io.Writer, header dbheader.Header) error {
	bs, err := json.MarshalIndent(dbheader.ToLinkedHashMap(header), "", "  ")
	if err != nil {
		return errors.Wrap(err, "WriteJSON error marshalling header")
	}
	bs = append(bs, '\n')
	if _, err := w.Write(bs); err != nil {
		return errors.Wrap(err, "WriteJSON error")
	}
	return nil
}
