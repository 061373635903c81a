package usecase

import (
	"context"
	"errors"

	"skill-summarizer-backend/internal/domain"
	"skill-summarizer-backend/pkg/objectid"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
	validate  *validator.Validate
}

func NewSkillUsecase(skillRepo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo: skillRepo,
		validate:  validate,
	}
}

func (u *skillUsecase) CreateSkill(ctx context.Context, input domain.CreateSkillInput) (*domain.Skill, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	id, err := u.skillRepo.Create(ctx, input.NewSkillDocument())
	if err != nil {
		return nil, err
	}

	return u.GetSkill(ctx, id)
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx, domain.MaxListSize)
}

func (u *skillUsecase) GetSkill(ctx context.Context, id objectid.ID) (*domain.Skill, error) {
	skill, err := u.skillRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, notFound("Skill", id)
	}
	if err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, id objectid.ID, patch domain.SkillPatch) (*domain.Skill, error) {
	if err := u.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	if fields := patch.Fields(); len(fields) > 0 {
		modified, err := u.skillRepo.Update(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if modified == 1 {
			skill, err := u.skillRepo.GetByID(ctx, id)
			if err == nil {
				return skill, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
	}

	// Nothing changed: fall back to the stored record
	return u.GetSkill(ctx, id)
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, id objectid.ID) error {
	deleted, err := u.skillRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return notFound("Skill", id)
	}
	return nil
}
