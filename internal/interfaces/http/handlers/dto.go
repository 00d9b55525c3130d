package handlers

import (
	"casefile/internal/application/cases/usecases"
	"casefile/internal/domain/cases"
	"casefile/internal/domain/user"
)

type SignupRequest struct {
	Identifier string `json:"identifier" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
}

type SigninRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type CompleteProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required,max=100"`
}

type CreateCaseRequest struct {
	Description string `json:"description" binding:"required,max=5000"`
	Status      string `json:"status,omitempty" binding:"omitempty,casestatus"`
	FirstName   string `json:"first_name" binding:"required,max=100"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Suffix      string `json:"suffix,omitempty"`
	Street      string `json:"street" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=100"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
}

func (r *CreateCaseRequest) ToCommand(userID uint) usecases.CreateCaseCommand {
	return usecases.CreateCaseCommand{
		UserID:      userID,
		Description: r.Description,
		Status:      r.Status,
		Respondent: usecases.RespondentInput{
			FirstName:  r.FirstName,
			MiddleName: r.MiddleName,
			LastName:   r.LastName,
			Suffix:     r.Suffix,
			Street:     r.Street,
			City:       r.City,
			State:      r.State,
			PostalCode: r.PostalCode,
		},
	}
}

type UpdateCaseRequest struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,casestatus"`
}

type AddAttachmentRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
}

type UserResponse struct {
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name,omitempty"`
	ProfileCompleted bool   `json:"profile_completed"`
	CreatedAt        int64  `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:               u.ID(),
		Email:            u.Email().String(),
		DisplayName:      u.DisplayName(),
		ProfileCompleted: u.ProfileCompleted(),
		CreatedAt:        u.CreatedAt().UnixMilli(),
	}
}

type RespondentResponse struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Suffix     string `json:"suffix,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	FullName   string `json:"full_name"`
}

type CaseResponse struct {
	ID          uint                 `json:"id"`
	Description string               `json:"description"`
	Status      string               `json:"status"`
	Respondent  *RespondentResponse  `json:"respondent,omitempty"`
	Attachments []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt   int64                `json:"created_at"`
	UpdatedAt   int64                `json:"updated_at"`
}

func NewCaseResponse(c *cases.Case) CaseResponse {
	resp := CaseResponse{
		ID:          c.ID(),
		Description: c.Description(),
		Status:      c.Status().String(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}

	if r := c.Respondent(); r != nil {
		resp.Respondent = &RespondentResponse{
			ID:         r.ID(),
			FirstName:  r.FirstName(),
			MiddleName: r.MiddleName(),
			LastName:   r.LastName(),
			Suffix:     r.Suffix(),
			Street:     r.Street(),
			City:       r.City(),
			State:      r.State(),
			PostalCode: r.PostalCode(),
			FullName:   r.FullName(),
		}
	}

	for _, a := range c.Attachments() {
		resp.Attachments = append(resp.Attachments, NewAttachmentResponse(a, ""))
	}

	return resp
}

func NewCaseListResponse(userCases []*cases.Case) []CaseResponse {
	result := make([]CaseResponse, 0, len(userCases))
	for _, c := range userCases {
		result = append(result, NewCaseResponse(c))
	}
	return result
}

type AttachmentResponse struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`
	DownloadURL string `json:"download_url,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

func NewAttachmentResponse(a *cases.Attachment, downloadURL string) AttachmentResponse {
	return AttachmentResponse{
		ID:          a.ID(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		SizeBytes:   a.SizeBytes(),
		DownloadURL: downloadURL,
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}
