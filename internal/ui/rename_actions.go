package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/font-renamer/internal/model"
	"github.com/ytget/font-renamer/internal/rename"
)

// onRenameClick renames every checked row to its selected name
func (ui *RootUI) onRenameClick() {
	if ui.scanning || ui.renaming {
		return
	}

	checked := ui.store.Checked()
	if len(checked) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeyNothingSelected), ui.window)
		return
	}

	reqs, ids, empty := buildRequests(checked)
	if len(empty) > 0 {
		message := ui.localization.GetText(KeyEmptyNewName) + "\n" + ui.limitedList(empty, MaxListedFailures)
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), message, ui.window)
	}
	if len(reqs) == 0 {
		return
	}

	// Renames must not look like external removals
	for _, req := range reqs {
		ui.untrack(req.Path)
	}
	ui.store.SetStatus(ids, model.FileStatusRenaming)
	ui.beginBatch(ui.localization.Format(KeyRenaming, 0, len(reqs)))

	log.Printf("Renaming %d files", len(reqs))
	go func() {
		results := ui.renamer.Apply(reqs, func(done, total int, _ model.RenameResult) {
			fyne.Do(func() {
				ui.progress.SetValue(float64(done) / float64(total))
				ui.setStatus(ui.localization.Format(KeyRenaming, done, total))
			})
		})
		fyne.Do(func() {
			ui.finishRename(results)
		})
	}()
}

// buildRequests turns checked rows into rename requests. Rows whose new name
// is blank are returned by base name instead.
func buildRequests(files []*model.FontFile) ([]rename.Request, []string, []string) {
	var (
		reqs  []rename.Request
		ids   []string
		empty []string
	)
	for _, f := range files {
		name := strings.TrimSpace(f.Selected)
		if name == "" {
			empty = append(empty, f.BaseName())
			continue
		}
		reqs = append(reqs, rename.Request{FileID: f.ID, Path: f.Path, NewName: name})
		ids = append(ids, f.ID)
	}
	return reqs, ids, empty
}

func (ui *RootUI) beginBatch(status string) {
	ui.renaming = true
	ui.progress.SetValue(0)
	ui.progress.Show()
	ui.setStatus(status)
	ui.refreshView()
}

func (ui *RootUI) endBatch() {
	ui.renaming = false
	ui.progress.Hide()
}

// finishRename reports the outcome of a batch and updates the list
func (ui *RootUI) finishRename(results []model.RenameResult) {
	ui.endBatch()
	ui.lastResults = results
	renamed := rename.Renamed(results)

	status := ui.localization.GetText(KeyReady)
	if ui.settings.GetWriteJournal() && len(renamed) > 0 {
		path, err := rename.SaveJournal(ui.settings.GetJournalDirectory(), results, time.Now())
		if err != nil {
			log.Printf("Failed to save rename journal: %v", err)
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyJournalFailed), err), ui.window)
		} else {
			log.Printf("Rename journal saved: %s", path)
			status = ui.localization.Format(KeyJournalSaved, path)
		}
	}

	ui.showFailures(results)

	if len(renamed) > 0 {
		lines := make([]string, 0, len(renamed))
		for _, r := range renamed {
			lines = append(lines, r.OldName()+RenameArrow+r.NewName())
		}
		message := ui.localization.GetText(KeyRenamedFiles) + "\n" + ui.limitedList(lines, MaxListedFailures)
		dialog.ShowInformation(ui.localization.GetText(KeyRenameSuccess), message, ui.window)
	} else {
		dialog.ShowInformation(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeyNothingRenamed), ui.window)
	}

	if ui.settings.GetKeepListAfterRename() {
		ui.applyResults(results)
	} else {
		ui.clearList()
	}

	log.Printf("Rename finished: %d of %d files renamed", len(renamed), len(results))
	ui.setStatus(status)
	ui.refreshView()
}

// showFailures opens one error dialog per failed file, up to MaxErrorDialogs
func (ui *RootUI) showFailures(results []model.RenameResult) {
	shown := 0
	for _, r := range results {
		if r.Status != model.FileStatusError {
			continue
		}
		if shown == MaxErrorDialogs {
			break
		}
		shown++
		err := fmt.Errorf("%s: %s", ui.localization.Format(KeyRenameFailed, r.OldName()), r.Reason)
		dialog.ShowError(err, ui.window)
	}
}

// applyResults moves rows to their rename outcome and keeps the scanner and
// watcher in step with the new paths. It returns the new paths of moved files
// that are not in the list.
func (ui *RootUI) applyResults(results []model.RenameResult) []string {
	var unlisted []string
	for _, r := range results {
		if !ui.store.ApplyResult(r) {
			if r.Status == model.FileStatusRenamed {
				unlisted = append(unlisted, r.NewPath)
			}
			continue
		}
		current := r.OldPath
		if r.Status == model.FileStatusRenamed {
			ui.scanner.Forget(r.OldPath)
			ui.scanner.Remember(r.NewPath)
			current = r.NewPath
		}
		ui.track(current)
	}
	return unlisted
}

// clearList drops every row and forgets what was loaded
func (ui *RootUI) clearList() {
	paths := ui.store.Clear()
	ui.scanner.Reset()
	if ui.watcher != nil {
		ui.watcher.Reset()
	}
	log.Printf("Cleared %d files from the list", len(paths))
}

// onClearClick empties the list
func (ui *RootUI) onClearClick() {
	if ui.scanning || ui.renaming {
		return
	}
	ui.clearList()
	ui.setStatus(ui.localization.GetText(KeyReady))
	ui.refreshView()
}

// onUndoClick moves the files of the last batch back to their old names
func (ui *RootUI) onUndoClick() {
	if ui.scanning || ui.renaming {
		return
	}

	last := ui.lastResults
	renamed := rename.Renamed(last)
	if len(renamed) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeyNothingToUndo), ui.window)
		return
	}

	ids := make([]string, 0, len(renamed))
	for _, r := range renamed {
		ui.untrack(r.NewPath)
		ids = append(ids, r.FileID)
	}
	ui.store.SetStatus(ids, model.FileStatusRenaming)
	ui.beginBatch(ui.localization.Format(KeyRenaming, 0, len(renamed)))

	log.Printf("Undoing %d renames", len(renamed))
	go func() {
		back := ui.renamer.Undo(last)
		fyne.Do(func() {
			ui.finishUndo(back)
		})
	}()
}

// finishUndo updates loaded rows and rescans restored files that are no
// longer in the list
func (ui *RootUI) finishUndo(back []model.RenameResult) {
	ui.endBatch()
	ui.lastResults = nil

	rescan := ui.applyResults(back)
	ui.showFailures(back)

	restored := len(rename.Renamed(back))
	log.Printf("Undo finished: %d of %d files restored", restored, len(back))
	ui.setStatus(ui.localization.Format(KeyUndoDone, restored))
	ui.refreshView()

	ui.startScan(rescan)
}
