package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"token-presale-backend/internal/common/errors"
	"token-presale-backend/internal/common/middleware"
	"token-presale-backend/internal/features/presale/models"
	"token-presale-backend/internal/features/presale/service"
)

// callerHeader carries the sender identity of the host envelope.
const callerHeader = "X-Caller-Address"

// InstructionPublisher forwards committed instructions to the executing
// host's queue. Optional; nil disables publishing.
type InstructionPublisher interface {
	Publish(ctx context.Context, operation string, instructions []models.Instruction)
}

type PresaleHandler struct {
	service   service.PresaleService
	publisher InstructionPublisher
	logger    zerolog.Logger
	// now is swapped out in tests.
	now func() int64
}

func NewPresaleHandler(svc service.PresaleService, publisher InstructionPublisher, logger zerolog.Logger) *PresaleHandler {
	return &PresaleHandler{
		service:   svc,
		publisher: publisher,
		logger:    logger,
		now:       func() int64 { return time.Now().Unix() },
	}
}

func (h *PresaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	presale := router.Group("/presale")
	{
		presale.POST("/init", h.initialize)
		presale.POST("/purchase", h.purchase)
		presale.POST("/mint", h.triggerMint)
		presale.POST("/withdraw", h.withdrawFunds)
		presale.POST("/token-contract", h.bindTokenContract)
		presale.POST("/owner", h.changeOwner)

		presale.GET("/config", h.getConfig)
		presale.GET("/users/:address", h.getUser)
		presale.GET("/participants", h.listParticipants)
	}
}

// call assembles the per-invocation envelope: caller identity from the
// header, wall-clock time from the server. Funds come from request bodies
// where an operation accepts them.
func (h *PresaleHandler) call(c *gin.Context) (service.Call, bool) {
	caller := c.GetHeader(callerHeader)
	if caller == "" {
		middleware.SendError(c, errors.New(errors.ErrCodeBadRequest, "missing "+callerHeader+" header"), h.logger)
		return service.Call{}, false
	}
	return service.Call{Caller: caller, Now: h.now()}, true
}

// @Summary Initialize the presale
// @Description One-time creation of the presale configuration. The caller becomes the owner.
// @Tags presale
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Caller identity"
// @Param request body models.InitRequest true "Sale parameters"
// @Success 200 {object} models.ExecuteResponse
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 409 {object} models.ErrorResponse "Already initialized"
// @Router /presale/init [post]
func (h *PresaleHandler) initialize(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req models.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid init request"), h.logger)
		return
	}

	if err := h.service.Initialize(c.Request.Context(), call, &req); err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info().Str("owner", call.Caller).Msg("Presale initialized")
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: []models.Instruction{}})
}

// @Summary Purchase tokens
// @Description Buys a quantity at the configured price. The full tendered amount in the sale denom is forwarded to the owner.
// @Tags presale
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Buyer identity"
// @Param request body models.PurchaseRequest true "Quantity and tendered funds"
// @Success 200 {object} models.ExecuteResponse "Committed; instructions for the host"
// @Failure 402 {object} models.ErrorResponse "Not enough funds"
// @Failure 422 {object} models.ErrorResponse "Not started or supply exhausted"
// @Router /presale/purchase [post]
func (h *PresaleHandler) purchase(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req models.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid purchase request"), h.logger)
		return
	}
	call.Funds = req.Funds

	instructions, err := h.service.Purchase(c.Request.Context(), call, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logInstructions(c, "purchase", instructions)
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: instructions})
}

// @Summary Trigger supply mint
// @Description Owner-only. Emits an instruction for the bound token contract to mint the total supply to this contract.
// @Tags presale
// @Produce json
// @Param X-Caller-Address header string true "Caller identity"
// @Success 200 {object} models.ExecuteResponse
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Router /presale/mint [post]
func (h *PresaleHandler) triggerMint(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	instructions, err := h.service.TriggerMint(c.Request.Context(), call)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logInstructions(c, "mint", instructions)
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: instructions})
}

// @Summary Withdraw retained funds
// @Description Owner-only. Sweeps coins tendered in non-sale currencies to the owner and clears the retained ledger.
// @Tags presale
// @Produce json
// @Param X-Caller-Address header string true "Caller identity"
// @Success 200 {object} models.ExecuteResponse
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Failure 422 {object} models.ErrorResponse "Nothing to withdraw"
// @Router /presale/withdraw [post]
func (h *PresaleHandler) withdrawFunds(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	instructions, err := h.service.WithdrawFunds(c.Request.Context(), call)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logInstructions(c, "withdraw", instructions)
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: instructions})
}

// @Summary Bind the token contract
// @Description Owner-only. Sets the mint-capable token contract address.
// @Tags presale
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Caller identity"
// @Param request body models.AddressRequest true "Token contract address"
// @Success 200 {object} models.ExecuteResponse
// @Failure 400 {object} models.ErrorResponse "Malformed address"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Router /presale/token-contract [post]
func (h *PresaleHandler) bindTokenContract(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid bind request"), h.logger)
		return
	}

	if err := h.service.BindTokenContract(c.Request.Context(), call, req.Address); err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info().Str("token_contract", req.Address).Msg("Token contract bound")
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: []models.Instruction{}})
}

// @Summary Change the owner
// @Description Owner-only. Transfers ownership to a new address.
// @Tags presale
// @Accept json
// @Produce json
// @Param X-Caller-Address header string true "Caller identity"
// @Param request body models.AddressRequest true "New owner address"
// @Success 200 {object} models.ExecuteResponse
// @Failure 400 {object} models.ErrorResponse "Malformed address"
// @Failure 403 {object} models.ErrorResponse "Not the owner"
// @Router /presale/owner [post]
func (h *PresaleHandler) changeOwner(c *gin.Context) {
	call, ok := h.call(c)
	if !ok {
		return
	}

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeBadRequest, "invalid change-owner request"), h.logger)
		return
	}

	if err := h.service.ChangeOwner(c.Request.Context(), call, req.Address); err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info().Str("new_owner", req.Address).Msg("Owner changed")
	c.JSON(http.StatusOK, models.ExecuteResponse{Success: true, Instructions: []models.Instruction{}})
}

// @Summary Get presale config
// @Tags presale
// @Produce json
// @Success 200 {object} models.PresaleConfig
// @Failure 404 {object} models.ErrorResponse "Not initialized"
// @Router /presale/config [get]
func (h *PresaleHandler) getConfig(c *gin.Context) {
	cfg, err := h.service.GetConfig(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary Get a buyer record
// @Tags presale
// @Produce json
// @Param address path string true "Buyer address"
// @Success 200 {object} models.UserRecord
// @Failure 404 {object} models.ErrorResponse "No purchase record"
// @Router /presale/users/{address} [get]
func (h *PresaleHandler) getUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary List participants
// @Description Every distinct buyer in first-purchase order.
// @Tags presale
// @Produce json
// @Success 200 {object} models.ParticipantsResponse
// @Failure 404 {object} models.ErrorResponse "No purchases yet"
// @Router /presale/participants [get]
func (h *PresaleHandler) listParticipants(c *gin.Context) {
	participants, err := h.service.ListParticipants(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ParticipantsResponse{Participants: participants})
}

func (h *PresaleHandler) fail(c *gin.Context, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.Wrap(err, errors.ErrCodeInternal, "unexpected error")
	}
	middleware.SendError(c, appErr, h.logger)
}

func (h *PresaleHandler) logInstructions(c *gin.Context, operation string, instructions []models.Instruction) {
	for _, in := range instructions {
		h.logger.Info().
			Str("request_id", middleware.GetRequestID(c)).
			Str("operation", operation).
			Str("instruction", string(in.Type)).
			Msg("Outbound instruction emitted")
	}
	if h.publisher != nil {
		h.publisher.Publish(c.Request.Context(), operation, instructions)
	}
}
