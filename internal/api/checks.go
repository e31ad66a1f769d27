// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"uptime-warden/internal/check"
	"uptime-warden/internal/store"
)

type CheckResponse struct {
	Id          string      `json:"id"`
	Target      string      `json:"target,omitempty"`
	State       check.State `json:"state,omitempty"`
	LastChecked int64       `json:"lastChecked,omitempty"`
	Monitorable bool        `json:"monitorable"`
	Reason      string      `json:"reason,omitempty"`
}

func makeCheckResponse(checkId string, record store.Record) CheckResponse {
	c, err := check.Validate(record)
	if err != nil {
		return CheckResponse{Id: checkId, Monitorable: false, Reason: err.Error()}
	}

	return CheckResponse{
		Id:          c.Id,
		Target:      c.HttpMethod() + " " + c.Target(),
		State:       c.State,
		LastChecked: c.LastChecked,
		Monitorable: true,
	}
}

func (s *Server) getCheck(ctx *fiber.Ctx) error {
	checkId := ctx.Params("checkId")

	record, err := s.records.Read(ctx.UserContext(), store.NamespaceChecks, checkId)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "check not found"})
		case errors.Is(err, store.ErrMalformed):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(CheckResponse{Id: checkId, Reason: err.Error()})
		default:
			log.Error().Err(err).Str("checkId", checkId).Msg("Error while reading check")
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error retrieving check"})
		}
	}

	response := makeCheckResponse(checkId, record)
	if !response.Monitorable {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(response)
	}

	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (s *Server) getAllChecks(ctx *fiber.Ctx) error {
	var body = struct {
		Items []CheckResponse `json:"items"`
	}{make([]CheckResponse, 0)}

	keys, err := s.records.List(ctx.UserContext(), store.NamespaceChecks)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			return ctx.Status(fiber.StatusOK).JSON(body)
		}
		log.Error().Err(err).Msg("Error while listing checks")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error listing checks"})
	}

	for _, key := range keys {
		record, err := s.records.Read(ctx.UserContext(), store.NamespaceChecks, key)
		if err != nil {
			body.Items = append(body.Items, CheckResponse{Id: key, Reason: err.Error()})
			continue
		}
		body.Items = append(body.Items, makeCheckResponse(key, record))
	}

	return ctx.Status(fiber.StatusOK).JSON(body)
}
