package controllers

import (
	"github.com/gin-gonic/gin"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type PersonaController struct {
	personaService services.PersonaServiceInterface
}

func NewPersonaController(personaService services.PersonaServiceInterface) *PersonaController {
	return &PersonaController{
		personaService: personaService,
	}
}

func (pc *PersonaController) ListPersonas(c *gin.Context) {
	personas, err := pc.personaService.ListPersonas(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, personas, "Fetched personas successfully")
}

func (pc *PersonaController) GetPersona(c *gin.Context) {
	persona, err := pc.personaService.GetPersona(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, persona, "Fetched persona successfully")
}
