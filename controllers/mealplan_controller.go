package controllers

import (
	"errors"
	"net/http"
	"strings"

	"nutriplan/config"
	"nutriplan/models"
	"nutriplan/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealPlanController struct {
	svc *services.MealPlanService
}

func NewMealPlanController(svc *services.MealPlanService) *MealPlanController {
	return &MealPlanController{svc: svc}
}

type GeneratePlanInput struct {
	Days        int `json:"days"`
	MealsPerDay int `json:"meals_per_day"`
}

func (mc *MealPlanController) GeneratePlan(c *gin.Context) {
	email := c.GetString("email")
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var input GeneratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.svc.GeneratePlan(&user, input.Days, input.MealsPerDay)
	if err != nil {
		if strings.Contains(err.Error(), "profile incomplete") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (mc *MealPlanController) GetPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	plan, err := mc.svc.GetPlan(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (mc *MealPlanController) ListPlans(c *gin.Context) {
	uid := c.GetUint("userID")

	plans, err := mc.svc.ListPlans(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}
