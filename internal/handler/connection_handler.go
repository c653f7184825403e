package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"devconnect/backend/internal/database"
	"devconnect/backend/internal/models"
	"devconnect/backend/internal/store"
	"devconnect/backend/internal/workflow"

	"github.com/gin-gonic/gin"
)

// The engine is stateless, so building one per request over the shared
// database handle is cheap.
func engine() *workflow.Engine {
	return workflow.New(database.DB)
}

func userDirectory() *store.UserStore {
	return store.NewUserStore(database.DB)
}

// region --- DTOs ---

// SendRequestInput defines the body for sending a connection request.
type SendRequestInput struct {
	Status models.RequestStatus `json:"status" binding:"required" example:"interested"`
}

// ReviewRequestInput defines the body for reviewing an incoming request.
type ReviewRequestInput struct {
	Decision models.RequestStatus `json:"decision" binding:"required" example:"accepted"`
}

// RequestResponse defines the structure for a connection request record.
type RequestResponse struct {
	FromUserID uint                 `json:"from_user_id"`
	ToUserID   uint                 `json:"to_user_id"`
	Status     models.RequestStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// IncomingRequestResponse is a pending request with the sender's profile attached.
type IncomingRequestResponse struct {
	FromUser  PublicUserResponse `json:"from_user"`
	CreatedAt time.Time          `json:"created_at"`
}

func newRequestResponse(r *models.ConnectionRequest) RequestResponse {
	return RequestResponse{
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// endregion

// workflowErrorStatus maps each engine error kind to its HTTP status. Unknown
// errors are infrastructural and surface as a generic server error.
func workflowErrorStatus(err error) int {
	switch {
	case errors.Is(err, workflow.ErrInvalidStatus),
		errors.Is(err, workflow.ErrSelfRequest),
		errors.Is(err, workflow.ErrSelfReview):
		return http.StatusBadRequest
	case errors.Is(err, workflow.ErrUserNotFound),
		errors.Is(err, workflow.ErrRequestNotFound),
		errors.Is(err, workflow.ErrConnectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, workflow.ErrReverseRequestExists),
		errors.Is(err, workflow.ErrDuplicateRelation),
		errors.Is(err, workflow.ErrAlreadyReviewed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithWorkflowError(c *gin.Context, err error) {
	status := workflowErrorStatus(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// SendRequest godoc
// @Summary      Send connection request
// @Description  Sends a connection request (interested) or passes on a user (ignored).
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int               true  "Target User ID"
// @Param        input  body      SendRequestInput  true  "Request status"
// @Success      201  {object}  RequestResponse
// @Failure      400  {object}  ErrorResponse "Invalid status or self request"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Duplicate or reverse request exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/request [post]
func SendRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	var input SendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := engine().SendRequest(viewerID.(uint), uint(targetUserID), input.Status)
	if err != nil {
		abortWithWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRequestResponse(record))
}

// ReviewRequest godoc
// @Summary      Review incoming request
// @Description  Accepts or rejects a pending connection request from another user.
// @Tags         connections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int                 true  "Requesting User ID"
// @Param        input  body      ReviewRequestInput  true  "Review decision"
// @Success      200  {object}  RequestResponse
// @Failure      400  {object}  ErrorResponse "Invalid decision"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request already reviewed"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/review [post]
func ReviewRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	requestingUserIDStr := c.Param("id")
	requestingUserID, err := strconv.ParseUint(requestingUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requesting user ID"})
		return
	}

	var input ReviewRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := engine().ReviewRequest(viewerID.(uint), uint(requestingUserID), input.Decision)
	if err != nil {
		abortWithWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRequestResponse(record))
}

// GetIncomingRequests godoc
// @Summary      List pending incoming requests
// @Description  Lists requests still awaiting the authenticated user's review, with sender profiles.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   IncomingRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/requests [get]
func GetIncomingRequests(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	records, err := engine().IncomingRequests(viewerID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	responses := make([]IncomingRequestResponse, 0, len(records))
	for _, r := range records {
		if r.FromUser.ID == 0 {
			continue
		}
		responses = append(responses, IncomingRequestResponse{
			FromUser:  buildPublicUserResponse(r.FromUser),
			CreatedAt: r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// GetConnections godoc
// @Summary      List connections
// @Description  Lists the profiles of everyone the authenticated user holds an accepted connection with.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/connections [get]
func GetConnections(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	users, err := engine().Connections(viewerID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch connections"})
		return
	}

	responses := make([]PublicUserResponse, 0, len(users))
	for _, u := range users {
		if u.ID == 0 {
			continue
		}
		responses = append(responses, buildPublicUserResponse(u))
	}

	c.JSON(http.StatusOK, responses)
}

// RemoveConnection godoc
// @Summary      Remove connection
// @Description  Removes an accepted connection with another user. The pair can send fresh requests afterwards.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Other User ID"
// @Success      200  {object}  map[string]string "{"message": "Connection removed"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Connection not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/remove [post]
func RemoveConnection(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserIDStr := c.Param("id")
	targetUserID, err := strconv.ParseUint(targetUserIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	if err := engine().RemoveConnection(viewerID.(uint), uint(targetUserID)); err != nil {
		abortWithWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Connection removed"})
}

// GetFeed godoc
// @Summary      Get discovery feed
// @Description  Returns a page of users the authenticated user has never interacted with.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[PublicUserResponse]
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users/feed [get]
func GetFeed(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	feed, err := engine().GetFeed(viewerID.(uint), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute feed"})
		return
	}

	responses := make([]PublicUserResponse, 0, len(feed.Items))
	for _, u := range feed.Items {
		responses = append(responses, buildPublicUserResponse(u))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(responses, feed.TotalCount, feed.Page, feed.PageSize))
}
