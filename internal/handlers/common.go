// common.go
//
// Planning portal ticket to job document delivery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of planning-portal.
// planning-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// planning-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with planning-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"errors"
	"mime/multipart"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/localnerve/planning-portal/internal/utils"
	"go.uber.org/zap"
)

// respondError maps a service error onto the error envelope. Server side failures are
// logged and reported as "Failed to <action>".
func respondError(c *fiber.Ctx, log *zap.Logger, action string, err error) error {
	var verr *types.ValidationError
	if errors.As(err, &verr) {
		return utils.ValidationErrorResponse(c, verr.Message, verr.Details)
	}

	status, errorType := types.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("action", action),
			zap.Error(err))
		return utils.ErrorResponse(c, "Failed to "+action, status, errorType)
	}
	return utils.ErrorResponse(c, err.Error(), status, errorType)
}

// missing reports an absent request field as a 400.
func missing(c *fiber.Ctx, field string) error {
	return utils.ErrorResponse(c, types.Errorf(types.ErrMissingRequiredField, "%s", field).Error(),
		fiber.StatusBadRequest, "missing_required_field")
}

// pathParam returns the route param with percent-encoding removed, so an encoded
// separator or dot segment is validated as what it decodes to.
func pathParam(c *fiber.Ctx, name string) (string, error) {
	value, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", types.Errorf(types.ErrPathTraversal, "%s: malformed escape", name)
	}
	return value, nil
}

// formFile opens the multipart part named field. The caller closes the returned file.
func formFile(c *fiber.Ctx, field string) (documents.File, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil || header == nil {
		return documents.File{}, nil, types.Errorf(types.ErrMissingRequiredField, "%s", field)
	}
	f, err := header.Open()
	if err != nil {
		return documents.File{}, nil, types.Errorf(types.ErrIOFailure, "open upload: %v", err)
	}
	return documents.File{
		OriginalName: header.Filename,
		Type:         header.Header.Get(fiber.HeaderContentType),
		Size:         header.Size,
		Reader:       f,
	}, f, nil
}

// sendDownload streams an open stored file as an attachment. The file is closed once sent.
func sendDownload(c *fiber.Ctx, d services.Download) error {
	c.Attachment(d.Name)
	c.Set(fiber.HeaderContentType, d.Type)
	return c.SendStream(d.File, int(d.Size))
}
