package controller

import (
	"errors"
	"fmt"
	"phone_addiction_backend/internal/model"
	"phone_addiction_backend/internal/service"
	"phone_addiction_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(s *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: s}
}

// Questionnaire GET /predict
func (c *AssessmentController) Questionnaire(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	util.Success(ctx, gin.H{
		"username":  user.Username,
		"questions": c.Service.Questionnaire(),
	})
}

// Predict POST /predict，表单字段 age、q0..q17；缺失或非法的答案按 0 处理
func (c *AssessmentController) Predict(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	age := strings.TrimSpace(ctx.PostForm("age"))

	var answers model.AnswerSet
	for i := range answers {
		answers[i] = util.ParseAnswer(ctx.PostForm(fmt.Sprintf("q%d", i)))
	}

	res, err := c.Service.Submit(user.UserID, age, answers)
	if err != nil {
		if errors.Is(err, util.ErrStorageUnavailable) {
			util.LogStorageError(ctx, err)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// History GET /logs
func (c *AssessmentController) History(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)

	entries, err := c.Service.History(user.UserID, user.Username)
	if err != nil {
		if errors.Is(err, util.ErrStorageUnavailable) {
			util.LogStorageError(ctx, err)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"username": user.Username,
		"logs":     entries,
	})
}

// About GET /about
func (c *AssessmentController) About(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"questionCount":     model.QuestionCount,
		"maxPossibleWeight": c.Service.Scorer.MaxPossible(),
		"categories":        service.CategoryThresholds(),
		"addictedThreshold": service.AddictedThreshold,
	})
}
