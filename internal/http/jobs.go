package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmehdipour/jobs-api/internal/http/middleware"
	"github.com/jmehdipour/jobs-api/internal/metrics"
	"github.com/jmehdipour/jobs-api/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type createJobReq struct {
	Name   *string      `json:"name"`
	Salary *salaryValue `json:"salary"`
}

// salaryValue accepts a JSON number or a string holding one ("1000").
type salaryValue float64

func (s *salaryValue) UnmarshalJSON(b []byte) error {
	var f float64
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("salary %q is not a number", raw)
		}
		f = v
	} else if err := json.Unmarshal(b, &f); err != nil {
		return err
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return errors.New("salary must be a finite number")
	}
	*s = salaryValue(f)
	return nil
}

// decodeCreateJob reads exactly one JSON object from body; anything after it
// makes the payload malformed.
func decodeCreateJob(body io.Reader) (createJobReq, error) {
	var req createJobReq

	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		return createJobReq{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return createJobReq{}, errors.New("unexpected data after JSON object")
	}
	return req, nil
}

// validate reports missing fields; type mismatches are caught while decoding.
func (r createJobReq) validate() error {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.Salary == nil {
		missing = append(missing, "salary")
	}
	if len(missing) > 0 {
		return fmt.Errorf("field required: %s", strings.Join(missing, ", "))
	}
	return nil
}

func validationError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnprocessableEntity, middleware.ErrorBody{
		Error:  "validation_error",
		Detail: detail,
	})
}

func jobNotFound(c echo.Context, id string) error {
	return c.JSON(http.StatusNotFound, middleware.ErrorBody{
		Error:  "not_found",
		Detail: fmt.Sprintf("404 Not Found: Job ID %s not found.", id),
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, middleware.ErrorBody{
		Error:  "internal_error",
		Detail: "internal server error",
	})
}

func listJobsHandler(jobs repository.JobsRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := jobs.List(c.Request().Context())
		if err != nil {
			log.Errorf("list jobs failed: %v", err)
			return internalError(c)
		}

		return c.JSON(http.StatusOK, list)
	}
}

func createJobHandler(jobs repository.JobsRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decodeCreateJob(c.Request().Body)
		if err != nil {
			return validationError(c, "malformed job payload: name must be a string and salary a number")
		}
		if err := req.validate(); err != nil {
			return validationError(c, err.Error())
		}

		job, err := jobs.Insert(c.Request().Context(), *req.Name, float64(*req.Salary))
		if err != nil {
			log.Errorf("insert job failed: %v", err)
			return internalError(c)
		}
		metrics.JobsCreatedTotal.Inc()

		return c.JSON(http.StatusCreated, job)
	}
}

func getJobHandler(jobs repository.JobsRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Param("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			// a valid integer no store id can reach
			return jobNotFound(c, raw)
		}
		if err != nil {
			return validationError(c, fmt.Sprintf("job id must be an integer, got %q", raw))
		}

		job, err := jobs.GetByID(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return jobNotFound(c, strconv.FormatInt(id, 10))
			}

			log.Errorf("get job %d failed: %v", id, err)

			return internalError(c)
		}

		return c.JSON(http.StatusOK, job)
	}
}
