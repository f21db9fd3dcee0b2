package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tabletop-events-api/internal/auth"
	"tabletop-events-api/internal/dto"
	"tabletop-events-api/internal/response"
	"tabletop-events-api/internal/service"
)

type AccountHandler struct {
	accountService service.AccountService
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// GetAccounts handles GET /accounts and GET /accounts?email=
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	if email, ok := c.GetQuery("email"); ok {
		if strings.TrimSpace(email) == "" {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "email is required")
			return
		}
		account, err := h.accountService.FindByUsername(c.Request.Context(), email)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response.SendSuccess(c, http.StatusOK, account)
		return
	}

	accounts, err := h.accountService.GetAccounts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, accounts)
}

// GetAccount handles GET /accounts/:id
func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := pathID(c, "account")
	if !ok {
		return
	}
	account, err := h.accountService.GetAccount(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}

// CreateAccount handles POST /accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.CreateAccount(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, account)
}

// GetMe handles GET /accounts/me
func (h *AccountHandler) GetMe(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	account, err := h.accountService.GetAccount(c.Request.Context(), caller.AccountID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}

// UpdateMe handles PUT /accounts/me
func (h *AccountHandler) UpdateMe(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	h.update(c, caller, caller.AccountID)
}

// UpdateAccount handles PUT /accounts/:id
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "account")
	if !ok {
		return
	}
	h.update(c, caller, id)
}

func (h *AccountHandler) update(c *gin.Context, caller *auth.Caller, id int64) {
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req) {
		return
	}
	account, err := h.accountService.UpdateAccount(c.Request.Context(), caller, id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if account == nil {
		sendNotFound(c, "Account")
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}

// DeleteMe handles DELETE /accounts/me
func (h *AccountHandler) DeleteMe(c *gin.Context) {
	caller, ok := auth.CallerFrom(c)
	if !ok {
		sendUnauthorized(c)
		return
	}
	h.remove(c, caller, caller.AccountID)
}

// DeleteAccount handles DELETE /accounts/:id
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	id, ok := pathID(c, "account")
	if !ok {
		return
	}
	h.remove(c, caller, id)
}

func (h *AccountHandler) remove(c *gin.Context, caller *auth.Caller, id int64) {
	account, err := h.accountService.DeleteAccount(c.Request.Context(), caller, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if account == nil {
		sendNotFound(c, "Account")
		return
	}
	response.SendMessage(c, http.StatusOK, "Account deleted successfully")
}

// SetAdmin handles POST /admin/set-admin
func (h *AccountHandler) SetAdmin(c *gin.Context) {
	caller, _ := auth.CallerFrom(c)
	var req dto.SetAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	isAdmin := true
	if req.IsAdmin != nil {
		isAdmin = *req.IsAdmin
	}

	account, err := h.accountService.SetAdmin(c.Request.Context(), caller, req.Email, isAdmin)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}
