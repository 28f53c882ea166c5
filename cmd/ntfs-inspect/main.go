// Command ntfs-inspect is a read-only terminal browser over the database
// produced by ntfs-forensics: the decoded log records, the timestomp
// verdicts, and the MFT cross-check hits.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	_ "modernc.org/sqlite"
)

// row is one browsable entry: a one-line summary for the list pane and a
// full multi-line rendering for the detail pane.
type row struct {
	table   string
	summary string
	detail  string
}

type inspector struct {
	app    *tview.Application
	list   *tview.List
	detail *tview.TextView
	footer *tview.TextView
	search *tview.InputField

	rows     []row
	filtered []row
}

func main() {
	dbPath := flag.String("db", "ntfs_forensics.db", "path to a database produced by ntfs-forensics")
	flag.Parse()

	rows, err := loadRows(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		os.Exit(1)
	}

	insp := &inspector{rows: rows, filtered: rows}
	if err := insp.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadRows(dbPath string) ([]row, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows []row

	logRows, err := db.Query(`SELECT this_lsn, redo_op_name, undo_op_name, record_offset, attr_offset FROM LogFile`)
	if err != nil {
		return nil, err
	}
	for logRows.Next() {
		var lsn, redoOp, undoOp, recordOffset, attrOffset string
		if err := logRows.Scan(&lsn, &redoOp, &undoOp, &recordOffset, &attrOffset); err != nil {
			logRows.Close()
			return nil, err
		}
		rows = append(rows, row{
			table:   "LogFile",
			summary: fmt.Sprintf("[LogFile] %s  redo=%s undo=%s  @%s/%s", lsn, redoOp, undoOp, recordOffset, attrOffset),
			detail: fmt.Sprintf("Table: LogFile\nthis_lsn: %s\nredo_op_name: %s\nundo_op_name: %s\nrecord_offset: %s\nattr_offset: %s",
				lsn, redoOp, undoOp, recordOffset, attrOffset),
		})
	}
	logRows.Close()

	tsRows, err := db.Query(`SELECT this_lsn, attr_name, is_timestomped, redo_create_time, undo_create_time FROM TimeStomp`)
	if err != nil {
		return nil, err
	}
	for tsRows.Next() {
		var lsn, attrName string
		var isTimestomped bool
		var redoCreate, undoCreate sql.NullString
		if err := tsRows.Scan(&lsn, &attrName, &isTimestomped, &redoCreate, &undoCreate); err != nil {
			tsRows.Close()
			return nil, err
		}
		rows = append(rows, row{
			table:   "TimeStomp",
			summary: fmt.Sprintf("[TimeStomp] %s  %s  timestomped=%t", lsn, attrName, isTimestomped),
			detail: fmt.Sprintf("Table: TimeStomp\nthis_lsn: %s\nattr_name: %s\nis_timestomped: %t\nredo_create_time: %s\nundo_create_time: %s",
				lsn, attrName, isTimestomped, nullOr(redoCreate), nullOr(undoCreate)),
		})
	}
	tsRows.Close()

	sifnRows, err := db.Query(`SELECT mft_entry, si_create_time, fn_create_time FROM si_fn`)
	if err != nil {
		return nil, err
	}
	for sifnRows.Next() {
		var entry int64
		var siCreate, fnCreate sql.NullString
		if err := sifnRows.Scan(&entry, &siCreate, &fnCreate); err != nil {
			sifnRows.Close()
			return nil, err
		}
		rows = append(rows, row{
			table:   "si_fn",
			summary: fmt.Sprintf("[si_fn] entry %d  si=%s fn=%s", entry, nullOr(siCreate), nullOr(fnCreate)),
			detail:  fmt.Sprintf("Table: si_fn\nmft_entry: %d\nsi_create_time: %s\nfn_create_time: %s", entry, nullOr(siCreate), nullOr(fnCreate)),
		})
	}
	sifnRows.Close()

	return rows, nil
}

func nullOr(v sql.NullString) string {
	if !v.Valid {
		return "(null)"
	}
	return v.String
}

func (in *inspector) run() error {
	in.app = tview.NewApplication()

	in.list = tview.NewList().ShowSecondaryText(false)
	in.list.SetBorder(true).SetTitle(" Records ")

	in.detail = tview.NewTextView().SetDynamicColors(true)
	in.detail.SetBorder(true).SetTitle(" Detail ")

	in.footer = tview.NewTextView().SetText("/ search   q quit")

	in.search = tview.NewInputField().SetLabel("Search: ")

	in.rebuildList()

	in.list.SetChangedFunc(func(index int, _ string, _ string, _ rune) {
		if index >= 0 && index < len(in.filtered) {
			in.detail.SetText(in.filtered[index].detail)
		}
	})

	mainFlex := tview.NewFlex().
		AddItem(in.list, 0, 1, true).
		AddItem(in.detail, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(mainFlex, 0, 1, true).
		AddItem(in.footer, 1, 0, false)

	in.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			in.app.Stop()
			return nil
		case '/':
			in.showSearch(root)
			return nil
		}
		return event
	})

	return in.app.SetRoot(root, true).SetFocus(in.list).Run()
}

func (in *inspector) rebuildList() {
	in.list.Clear()
	for _, r := range in.filtered {
		in.list.AddItem(r.summary, "", 0, nil)
	}
}

func (in *inspector) showSearch(root *tview.Flex) {
	in.search.SetText("")
	in.search.SetDoneFunc(func(key tcell.Key) {
		term := strings.ToLower(in.search.GetText())
		in.filtered = in.filtered[:0]
		for _, r := range in.rows {
			if term == "" || strings.Contains(strings.ToLower(r.summary), term) {
				in.filtered = append(in.filtered, r)
			}
		}
		in.rebuildList()
		in.app.SetRoot(root, true).SetFocus(in.list)
	})
	in.app.SetRoot(in.search, true).SetFocus(in.search)
}
