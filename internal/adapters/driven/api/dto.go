package api

import "github.com/parassrivastav/traqcheck-cli/internal/core/domain"

// candidateDTO mirrors the candidate JSON the server emits for both list
// summaries and full detail.
type candidateDTO struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Company          string            `json:"company"`
	Designation      string            `json:"designation"`
	Confidence       float64           `json:"confidence"`
	ExtractionStatus string            `json:"extraction_status"`
	TelegramUsername string            `json:"telegram_username"`
	Skills           []string          `json:"skills"`
	CompanyHistory   []companyStintDTO `json:"company_history"`
}

// companyStintDTO is one work-history entry as the server emits it.
type companyStintDTO struct {
	Company   string `json:"company"`
	Duration  string `json:"duration"`
	IsCurrent bool   `json:"is_current"`
}

func (d *candidateDTO) toDomain() domain.Candidate {
	history := make([]domain.CompanyHistoryEntry, 0, len(d.CompanyHistory))
	for _, h := range d.CompanyHistory {
		history = append(history, domain.CompanyHistoryEntry{
			Company:   h.Company,
			Duration:  h.Duration,
			IsCurrent: h.IsCurrent,
		})
	}
	return domain.Candidate{
		ID:               d.ID,
		Name:             d.Name,
		Email:            d.Email,
		Phone:            d.Phone,
		Company:          d.Company,
		Designation:      d.Designation,
		Confidence:       d.Confidence,
		ExtractionStatus: domain.ParseExtractionStatus(d.ExtractionStatus),
		TelegramUsername: d.TelegramUsername,
		Skills:           d.Skills,
		CompanyHistory:   history,
	}
}

// documentDTO mirrors the document JSON from GET /candidates/{id}/documents.
type documentDTO struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	FileURL string `json:"file_url"`
}

func (d *documentDTO) toDomain(candidateID string) domain.Document {
	return domain.Document{
		ID:          d.ID,
		CandidateID: candidateID,
		Type:        domain.ParseDocumentType(d.Type),
		Status:      domain.ParseDocumentStatus(d.Status),
		FileURL:     d.FileURL,
	}
}

// uploadReceiptDTO mirrors the POST /candidates/upload success response.
type uploadReceiptDTO struct {
	ID         string   `json:"id"`
	Confidence float64  `json:"confidence"`
	Message    string   `json:"message"`
	Messages   []string `json:"messages"`
}

func (d *uploadReceiptDTO) stageMessages() []string {
	if len(d.Messages) > 0 {
		return d.Messages
	}
	if d.Message != "" {
		return []string{d.Message}
	}
	return nil
}
