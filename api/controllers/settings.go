package controllers

import (
	"net/http"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/api/validators"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

type updateSettingsRequest struct {
	StoreName        *string `json:"storeName" validate:"omitempty,min=1"`
	StoreDescription *string `json:"storeDescription"`
	WhatsAppNumber   *string `json:"whatsappNumber"`
	Currency         *string `json:"currency" validate:"omitempty,min=1"`
	ThemeColor       *string `json:"themeColor"`
	Logo             *string `json:"logo"`
	WelcomeMessage   *string `json:"welcomeMessage"`
	Footer           *string `json:"footer"`
	FacebookURL      *string `json:"facebookUrl" validate:"omitempty,url"`
	InstagramURL     *string `json:"instagramUrl" validate:"omitempty,url"`
	EmailContact     *string `json:"emailContact" validate:"omitempty,email"`
	Mission          *string `json:"mission"`
	Established      *string `json:"established"`
	Location         *string `json:"location"`
}

func (r updateSettingsRequest) toPatch() catalog.SettingsPatch {
	return catalog.SettingsPatch{
		StoreName:        r.StoreName,
		StoreDescription: r.StoreDescription,
		WhatsAppNumber:   r.WhatsAppNumber,
		Currency:         r.Currency,
		ThemeColor:       r.ThemeColor,
		Logo:             r.Logo,
		WelcomeMessage:   r.WelcomeMessage,
		Footer:           r.Footer,
		FacebookURL:      r.FacebookURL,
		InstagramURL:     r.InstagramURL,
		EmailContact:     r.EmailContact,
		Mission:          r.Mission,
		Established:      r.Established,
		Location:         r.Location,
	}
}

func GetSettings(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"settings": svc.Settings()})
	}
}

func UpdateSettings(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"settings": svc.UpdateSettings(r.Context(), payload.toPatch())})
	}
}
