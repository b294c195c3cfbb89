package handlers

import (
	"log"

	"snakegame/internal/middleware"
	"snakegame/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ScoreHandler handles HTTP requests for scores, the leaderboard and
// per-user records.
type ScoreHandler struct {
	scoreService *services.ScoreService
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(scoreService *services.ScoreService) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// RegisterRoutes registers the score routes with the Fiber app. Score
// submission works for guests, so it only gets the optional session lookup;
// the personal records route is strictly guarded.
func (h *ScoreHandler) RegisterRoutes(router fiber.Router, optionalAuth, authRequired fiber.Handler) {
	router.Post("/score", optionalAuth, h.HandleSaveScore)
	router.Get("/leaderboard", h.HandleLeaderboard)
	router.Get("/my-records", authRequired, h.HandleMyRecords)
}

// ScoreRequest represents the request body for a score submission. Score is
// a pointer so a missing field is distinguishable from an explicit zero.
type ScoreRequest struct {
	Score *int `json:"score"`
}

// HandleSaveScore records a finished game. Guests get a success response
// with saved:false and no row is written, so the game stays playable
// without an account.
func (h *ScoreHandler) HandleSaveScore(c *fiber.Ctx) error {
	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid score",
		})
	}
	if req.Score == nil || *req.Score < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid score",
		})
	}

	userID, loggedIn := middleware.UserID(c)
	if !loggedIn {
		return c.JSON(fiber.Map{
			"message": "guest mode, score not saved",
			"score":   *req.Score,
			"saved":   false,
		})
	}

	if err := h.scoreService.Save(userID, *req.Score); err != nil {
		log.Printf("Error saving score for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not save score",
		})
	}

	return c.JSON(fiber.Map{
		"message": "score saved",
		"score":   *req.Score,
		"saved":   true,
	})
}

// HandleLeaderboard returns the global top scores.
func (h *ScoreHandler) HandleLeaderboard(c *fiber.Ctx) error {
	entries, err := h.scoreService.Leaderboard()
	if err != nil {
		log.Printf("Error querying leaderboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not load leaderboard",
		})
	}
	return c.JSON(entries)
}

// HandleMyRecords returns the authenticated user's records bundle.
func (h *ScoreHandler) HandleMyRecords(c *fiber.Ctx) error {
	userID, _ := middleware.UserID(c)
	records, err := h.scoreService.RecordsFor(userID)
	if err != nil {
		log.Printf("Error loading records for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "could not load records",
		})
	}
	return c.JSON(records)
}
