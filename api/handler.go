package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viktsys/brvmwatch/database"
)

type Handler struct {
	store *database.Store
}

type coursQuery struct {
	Date    string `form:"date"`
	Symbole string `form:"symbole"`
	Limit   int    `form:"limit"`
}

func (h *Handler) GetSeances(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "90"))
	seances, err := h.store.Seances(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seances)
}

func (h *Handler) GetSeanceByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	seance, err := h.store.SeanceByDate(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if seance == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No seance for this date"})
		return
	}
	c.JSON(http.StatusOK, seance)
}

func (h *Handler) GetCours(c *gin.Context) {
	var params coursQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var date time.Time
	if params.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", params.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	}
	cours, err := h.store.Cours(date, params.Symbole, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cours)
}

func (h *Handler) GetTopMovers(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date. Use YYYY-MM-DD"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	hausses, baisses, err := h.store.TopMovers(date, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hausses": hausses, "baisses": baisses})
}

func (h *Handler) GetIndicesSectoriels(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing date. Use YYYY-MM-DD"})
		return
	}
	indices, err := h.store.IndicesSectoriels(date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, indices)
}

func SetupRoutes(store *database.Store) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	h := &Handler{store: store}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/seances", h.GetSeances)
	r.GET("/api/seances/:date", h.GetSeanceByDate)
	r.GET("/api/cours", h.GetCours)
	r.GET("/api/cours/top", h.GetTopMovers)
	r.GET("/api/secteurs", h.GetIndicesSectoriels)

	return r
}
