// controller/note_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tgechev/gonotes/errors"
	"github.com/tgechev/gonotes/model"
	"github.com/tgechev/gonotes/service"
	"github.com/tgechev/gonotes/util"
)

type NoteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) *NoteController {
	return &NoteController{
		noteService: noteService,
	}
}

// RegisterRoutes registers the API routes. Every note endpoint requires an
// authenticated user and operates on that user's notes only.
func (nc *NoteController) RegisterRoutes(r *gin.RouterGroup, authn gin.HandlerFunc) {
	notes := r.Group("/notes", authn)
	{
		notes.GET("", nc.ListNotes)
		notes.GET("/search", nc.SearchNotes)
		notes.GET("/:id", nc.GetNote)
		notes.POST("", nc.CreateNote)
		notes.PUT("/:id", nc.UpdateNote)
		notes.DELETE("/:id", nc.DeleteNote)
	}
}

// ListNotes endpoint
func (nc *NoteController) ListNotes(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := nc.noteService.ListNotes(c, identity.UserID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Could not get user notes.", err)
		return
	}

	util.RespondWithData(c, http.StatusOK, notes)
}

// SearchNotes endpoint
func (nc *NoteController) SearchNotes(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	keyword := c.Query("q")
	if keyword == "" {
		util.RespondWithMessage(c, http.StatusBadRequest, "Search keyword is required.")
		return
	}

	notes, err := nc.noteService.SearchNotes(c, identity.UserID, keyword)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Could not search notes.", err)
		return
	}

	util.RespondWithData(c, http.StatusOK, notes)
}

// GetNote endpoint
func (nc *NoteController) GetNote(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	note, err := nc.noteService.GetNote(c, identity.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Note not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not retrieve note.", err)
		}
		return
	}

	util.RespondWithData(c, http.StatusOK, note)
}

// CreateNote endpoint
func (nc *NoteController) CreateNote(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req model.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	noteID, err := nc.noteService.CreateNote(c, identity.UserID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidNoteData) {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid note data.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not create note.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note created.", "data": gin.H{"id": noteID}})
}

// UpdateNote endpoint
func (nc *NoteController) UpdateNote(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req model.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	note, err := nc.noteService.UpdateNote(c, identity.UserID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Note not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not update note.", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated.", "data": note})
}

// DeleteNote endpoint
func (nc *NoteController) DeleteNote(c *gin.Context) {
	identity, ok := util.CurrentIdentity(c)
	if !ok {
		util.RespondWithMessage(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := nc.noteService.DeleteNote(c, identity.UserID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Note not found.", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Could not delete note.", err)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Note deleted.")
}
