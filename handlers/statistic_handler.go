package handlers

import (
	"net/http"

	"github.com/Dosada05/sports-league-api/services"
)

type StatisticHandler struct {
	statisticService services.StatisticService
	statsService     services.StatsService
}

func NewStatisticHandler(ss services.StatisticService, ts services.StatsService) *StatisticHandler {
	return &StatisticHandler{
		statisticService: ss,
		statsService:     ts,
	}
}

// TeamStats отдаёт таблицы бомбардиров и ассистентов по всем матчам.
func (h *StatisticHandler) TeamStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.TeamStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) List(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticService.ListStatistics(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) ListByMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.statisticService.ListStatisticsByMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) ListByPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.statisticService.ListStatisticsByPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.statisticService.GetStatisticByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stat, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.StatisticInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if fieldErrors := validateInput(input); fieldErrors != nil {
		failedValidationResponse(w, r, fieldErrors)
		return
	}

	stat, err := h.statisticService.CreateStatistic(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, stat, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.StatisticInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if fieldErrors := validateInput(input); fieldErrors != nil {
		failedValidationResponse(w, r, fieldErrors)
		return
	}

	stat, err := h.statisticService.UpdateStatistic(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stat, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatisticHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.statisticService.DeleteStatistic(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
