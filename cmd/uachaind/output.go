package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var out io.Writer = os.Stdout

func newTable(header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Format.Header = text.FormatUpper
	t.AppendHeader(table.Row(header))
	return t
}

// printResult renders a delivery result and returns an error when it failed
// so the process exits non-zero.
func printResult(res sdk.Result) error {
	if !res.IsOK() {
		return errors.Errorf("delivery failed, code=%d: %s", res.Code, res.Log)
	}
	t := newTable("tag", "value")
	for _, tag := range res.Tags {
		t.AppendRow(table.Row{string(tag.Key), string(tag.Value)})
	}
	t.Render()
	return nil
}

func printJSON(bz []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bz, "", "  "); err != nil {
		return errors.Wrap(err, "query returned malformed json")
	}
	_, err := fmt.Fprintln(out, buf.String())
	return err
}
