package usecases

import (
	"context"

	"casefile/internal/domain/cases"
	vo "casefile/internal/domain/cases/valueobjects"
	"casefile/internal/shared/db"
	"casefile/internal/shared/errors"
	"casefile/internal/shared/logger"
)

type RespondentInput struct {
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Street     string
	City       string
	State      string
	PostalCode string
}

type CreateCaseCommand struct {
	UserID      uint
	Description string
	Status      string
	Respondent  RespondentInput
}

type CreateCaseUseCase struct {
	caseRepo cases.Repository
	txMgr    *db.TransactionManager
	logger   logger.Interface
}

// NewCreateCaseUseCase wires the create flow. txMgr may be nil when the
// underlying store has no transaction support; the use case then falls back
// to sequential writes with a compensating delete.
func NewCreateCaseUseCase(
	caseRepo cases.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateCaseUseCase {
	return &CreateCaseUseCase{
		caseRepo: caseRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *CreateCaseUseCase) Execute(ctx context.Context, cmd CreateCaseCommand) (*cases.Case, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	status := vo.NormalizeStatus(cmd.Status)
	if cmd.Status != "" && !status.IsValid() {
		return nil, errors.NewValidationError("invalid status: " + cmd.Status)
	}

	newCase, err := cases.NewCase(cmd.UserID, sanitizeDescription(cmd.Description), status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	respondent, err := cases.NewRespondent(
		cmd.Respondent.FirstName,
		cmd.Respondent.MiddleName,
		cmd.Respondent.LastName,
		cmd.Respondent.Suffix,
		cmd.Respondent.Street,
		cmd.Respondent.City,
		cmd.Respondent.State,
		cmd.Respondent.PostalCode,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if uc.txMgr != nil {
		err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.insertCaseWithRespondent(txCtx, newCase, respondent)
		})
		if err != nil {
			uc.logger.Errorw("failed to create case", "error", err, "user_id", cmd.UserID)
			return nil, errors.NewInternalError("failed to create case")
		}
	} else {
		if err := uc.createWithCompensation(ctx, newCase, respondent); err != nil {
			return nil, err
		}
	}

	// Re-read so the response carries the joined respondent exactly as
	// persisted. A failure here is ambiguous: the case exists.
	created, err := uc.caseRepo.FindByID(ctx, newCase.ID(), cmd.UserID)
	if err != nil {
		uc.logger.Errorw("case created but could not be reloaded",
			"error", err, "case_id", newCase.ID(), "user_id", cmd.UserID)
		return nil, errors.NewInternalError("case created but could not be loaded")
	}

	uc.logger.Infow("case created successfully", "case_id", created.ID(), "user_id", cmd.UserID)

	return created, nil
}

func (uc *CreateCaseUseCase) insertCaseWithRespondent(ctx context.Context, newCase *cases.Case, respondent *cases.Respondent) error {
	if err := uc.caseRepo.Save(ctx, newCase); err != nil {
		return err
	}
	if err := respondent.BindToCase(newCase.ID()); err != nil {
		return err
	}
	return uc.caseRepo.SaveRespondent(ctx, respondent)
}

// createWithCompensation inserts the case and respondent as two independent
// writes, deleting the orphaned case when the second write fails.
func (uc *CreateCaseUseCase) createWithCompensation(ctx context.Context, newCase *cases.Case, respondent *cases.Respondent) error {
	if err := uc.caseRepo.Save(ctx, newCase); err != nil {
		uc.logger.Errorw("failed to save case", "error", err, "user_id", newCase.UserID())
		return errors.NewInternalError("failed to create case")
	}

	if err := respondent.BindToCase(newCase.ID()); err != nil {
		uc.compensate(ctx, newCase.ID(), err)
		return errors.NewInternalError("failed to create case")
	}

	if err := uc.caseRepo.SaveRespondent(ctx, respondent); err != nil {
		uc.compensate(ctx, newCase.ID(), err)
		return errors.NewInternalError("failed to create case")
	}

	return nil
}

func (uc *CreateCaseUseCase) compensate(ctx context.Context, caseID uint, cause error) {
	uc.logger.Errorw("failed to save respondent, deleting orphaned case",
		"error", cause, "case_id", caseID)

	if delErr := uc.caseRepo.Delete(ctx, caseID); delErr != nil {
		uc.logger.Errorw("compensating delete failed, orphaned case remains",
			"error", delErr, "case_id", caseID, "original_error", cause)
	}
}
