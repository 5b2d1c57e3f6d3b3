package export

import (
	"context"
	"fmt"
	"strings"

	"nutrify/models"
	"nutrify/services/questionnaire"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// GoogleDocsExporter creates a Google Doc from a questionnaire record,
// optionally files it under a Drive folder and opens it to anyone with the
// link.
type GoogleDocsExporter struct {
	docsSvc  *docs.Service
	driveSvc *drive.Service
	folderID string
}

// NewGoogleDocsExporter builds the exporter from a service account
// credentials file. FolderID may be empty, leaving documents in the account
// root.
func NewGoogleDocsExporter(ctx context.Context, credentialsFile, folderID string) (*GoogleDocsExporter, error) {
	docsSvc, err := docs.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(docs.DocumentsScope, drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("docs export: init docs service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("docs export: init drive service: %w", err)
	}
	return &GoogleDocsExporter{
		docsSvc:  docsSvc,
		driveSvc: driveSvc,
		folderID: folderID,
	}, nil
}

// CreateRecordDocument creates the document, inserts the formatted record
// text, moves it to the configured folder and shares it read-only by link.
func (e *GoogleDocsExporter) CreateRecordDocument(ctx context.Context, record *models.QuestionnaireRecord) (string, error) {
	title := fmt.Sprintf("Dotazník – %s", record.Name())
	doc, err := e.docsSvc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("docs export: create document: %w", err)
	}

	body := FormatRecordText(record)
	_, err = e.docsSvc.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     body,
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("docs export: insert text: %w", err)
	}

	if e.folderID != "" {
		_, err = e.driveSvc.Files.Update(doc.DocumentId, nil).
			AddParents(e.folderID).
			Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("docs export: move to folder: %w", err)
		}
	}

	_, err = e.driveSvc.Permissions.Create(doc.DocumentId, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("docs export: share document: %w", err)
	}

	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", doc.DocumentId), nil
}

// FormatRecordText renders the record section by section in intake order,
// skipping unanswered fields.
func FormatRecordText(record *models.QuestionnaireRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Vstupní dotazník – %s\n", record.Name()))
	b.WriteString(fmt.Sprintf("ID: %s\n", record.SessionID))
	b.WriteString(fmt.Sprintf("Vyplněno: %s\n", record.CreatedAt.Format("2.1.2006 15:04")))

	for _, section := range questionnaire.Sections {
		var rows []string
		for _, field := range section.Fields {
			value := record.Field(field)
			if value == "" {
				continue
			}
			rows = append(rows, fmt.Sprintf("  %s: %s", questionnaire.FieldLabel(field), value))
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s\n", section.Title))
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
