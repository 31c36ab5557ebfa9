package tui

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldSubject
	fieldCourse
	fieldUniversity
	fieldPrice
	fieldTags
	fieldFile
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Titolo",
	"Descrizione",
	"Materia",
	"Corso",
	"Università",
	"Prezzo (ETH)",
	"Tag (separati da virgola)",
	"File",
}

type uploadModel struct {
	inputs     [fieldCount]textinput.Model
	subjects   []string
	subjectIdx int
	focus      int
	submitting bool
}

func newUploadModel(subjects []string) uploadModel {
	um := uploadModel{subjects: subjects}
	for i := range um.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		um.inputs[i] = ti
	}
	um.inputs[fieldPrice].Placeholder = "0.01"
	um.inputs[fieldFile].Placeholder = "/percorso/appunti.pdf"
	um.inputs[fieldDescription].CharLimit = 2000
	um.inputs[fieldTitle].Focus()
	if len(subjects) > 0 {
		um.inputs[fieldSubject].SetValue(subjects[0])
	}
	return um
}

func (um *uploadModel) setFocus(next int) {
	um.inputs[um.focus].Blur()
	um.focus = (next + fieldCount) % fieldCount
	um.inputs[um.focus].Focus()
}

func (um *uploadModel) cycleSubject(delta int) {
	if len(um.subjects) == 0 {
		return
	}
	um.subjectIdx = (um.subjectIdx + delta + len(um.subjects)) % len(um.subjects)
	um.inputs[fieldSubject].SetValue(um.subjects[um.subjectIdx])
}

func (um uploadModel) value(field int) string {
	return strings.TrimSpace(um.inputs[field].Value())
}

// request mirrors the form. The file is only named here; it is read on
// submit.
func (um uploadModel) request() models.PublishRequest {
	req := models.PublishRequest{
		Title:       um.value(fieldTitle),
		Description: um.value(fieldDescription),
		Subject:     um.value(fieldSubject),
		Course:      um.value(fieldCourse),
		University:  um.value(fieldUniversity),
		Price:       um.value(fieldPrice),
		Tags:        splitTags(um.value(fieldTags)),
	}
	if path := um.value(fieldFile); path != "" {
		req.Files = []models.UploadedFile{{Name: filepath.Base(path)}}
	}
	return req
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (m appModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.upload.inputs[m.upload.focus], cmd = m.upload.inputs[m.upload.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenMarketplace
		return m, nil
	case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
		m.upload.setFocus(m.upload.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
		m.upload.setFocus(m.upload.focus - 1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.upload.submitting {
			return m, nil
		}
		if !m.requireWallet() {
			m.showErrorf(app.MsgConnectWalletFirst)
			return m, nil
		}
		req := m.upload.request()
		if req.Title == "" || req.Subject == "" || req.University == "" || req.Price == "" || len(req.Files) == 0 {
			m.showErrorf(app.MsgRequiredFields)
			return m, nil
		}
		m.upload.submitting = true
		return m, m.cmdSubmitUpload(req, m.upload.value(fieldFile))
	}

	if m.upload.focus == fieldSubject {
		switch {
		case key.Matches(keyMsg, keys.left):
			m.upload.cycleSubject(-1)
		case key.Matches(keyMsg, keys.right):
			m.upload.cycleSubject(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.upload.inputs[m.upload.focus], cmd = m.upload.inputs[m.upload.focus].Update(keyMsg)
	return m, cmd
}

// cmdSubmitUpload reads the selected file and publishes the note.
func (m appModel) cmdSubmitUpload(req models.PublishRequest, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return publishedMsg{err: fmt.Errorf("read %s: %w", filepath.Base(path), err)}
		}
		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		req.Files = []models.UploadedFile{{
			Name:        filepath.Base(path),
			ContentType: contentType,
			Size:        int64(len(data)),
			Data:        data,
		}}
		return m.cmdPublish(req)()
	}
}

func (um uploadModel) View(probability int) string {
	var b strings.Builder
	for i := range um.inputs {
		label := fieldLabels[i]
		value := um.inputs[i].View()
		if i == fieldSubject {
			value = "◀ " + um.inputs[i].Value() + " ▶"
		}
		b.WriteString(fmt.Sprintf("%s%-26s %s\n", cursor(i == um.focus), label, value))
	}
	b.WriteString(fmt.Sprintf("\nProbabilità NFT: %d%%", probability))
	if um.submitting {
		b.WriteString("\n\nPubblicazione in corso...")
	}

	return renderPage("Pubblica appunti", b.String(), "tab/shift+tab campo  ←/→ materia  enter pubblica  esc indietro")
}
