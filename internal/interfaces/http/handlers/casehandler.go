package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"casefile/internal/application/cases/usecases"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
	"casefile/internal/shared/utils"
)

type CaseHandler struct {
	createCaseUC      usecases.CreateCaseExecutor
	updateCaseUC      usecases.UpdateCaseExecutor
	getCaseUC         usecases.GetCaseExecutor
	listCasesUC       usecases.ListCasesExecutor
	addAttachmentUC   usecases.AddAttachmentExecutor
	listAttachmentsUC usecases.ListAttachmentsExecutor
	logger            logger.Interface
}

func NewCaseHandler(
	createCaseUC usecases.CreateCaseExecutor,
	updateCaseUC usecases.UpdateCaseExecutor,
	getCaseUC usecases.GetCaseExecutor,
	listCasesUC usecases.ListCasesExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	listAttachmentsUC usecases.ListAttachmentsExecutor,
) *CaseHandler {
	return &CaseHandler{
		createCaseUC:      createCaseUC,
		updateCaseUC:      updateCaseUC,
		getCaseUC:         getCaseUC,
		listCasesUC:       listCasesUC,
		addAttachmentUC:   addAttachmentUC,
		listAttachmentsUC: listAttachmentsUC,
		logger:            logger.NewLogger(),
	}
}

// CreateCase handles POST /api/cases
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create case request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	created, err := h.createCaseUC.Execute(c.Request.Context(), req.ToCommand(currentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"case": NewCaseResponse(created),
	}, "case created successfully")
}

// GetCase handles GET /api/cases/:id
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	foundCase, err := h.getCaseUC.Execute(c.Request.Context(), usecases.GetCaseQuery{
		CaseID: caseID,
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"case": NewCaseResponse(foundCase),
	})
}

// ListCases handles GET /api/cases
func (h *CaseHandler) ListCases(c *gin.Context) {
	userCases, err := h.listCasesUC.Execute(c.Request.Context(), usecases.ListCasesQuery{
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"cases": NewCaseListResponse(userCases),
	})
}

// UpdateCase handles PUT /api/cases/:id
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update case request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	updated, err := h.updateCaseUC.Execute(c.Request.Context(), usecases.UpdateCaseCommand{
		CaseID:      caseID,
		UserID:      currentUserID(c),
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "case updated successfully", gin.H{
		"case": NewCaseResponse(updated),
	})
}

// AddAttachment handles POST /api/cases/:id/attachments
func (h *CaseHandler) AddAttachment(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid add attachment request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), usecases.AddAttachmentCommand{
		CaseID:      caseID,
		UserID:      currentUserID(c),
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"attachment": NewAttachmentResponse(result.Attachment, ""),
		"upload_url": result.UploadURL,
	}, "attachment registered successfully")
}

// ListAttachments handles GET /api/cases/:id/attachments
func (h *CaseHandler) ListAttachments(c *gin.Context) {
	caseID, err := parseCaseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachments, err := h.listAttachmentsUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{
		CaseID: caseID,
		UserID: currentUserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, NewAttachmentResponse(a.Attachment, a.DownloadURL))
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"attachments": responses,
	})
}

func parseCaseID(c *gin.Context) (uint, error) {
	caseID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid case ID")
	}
	return uint(caseID), nil
}
