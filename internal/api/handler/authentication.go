package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
	"github.com/vfg2006/campaign-dashboard-api/pkg/middleware"
)

type CreateUserRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	RoleID    int     `json:"role_id"`
	ClientID  *string `json:"client_id"`
	PartnerID *string `json:"partner_id"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cadastro feito pelo administrador
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		switch req.RoleID {
		case 0, domain.RoleAdmin, domain.RolePartner, domain.RoleClient:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "role_id inválido", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:      req.Name,
			Email:     req.Email,
			RoleID:    req.RoleID,
			ClientID:  req.ClientID,
			PartnerID: req.PartnerID,
			Active:    true,
		}, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar usuário")
			return
		}

		log.ForContext(r.Context()).Infof("usuário %d criado com perfil %d", user.ID, user.RoleID)

		user.PasswordHash = ""
		writeJSON(w, http.StatusCreated, user)
	}
}
