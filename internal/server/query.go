package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"restaurant_analytics/pkg/errcodes"
	"restaurant_analytics/pkg/rest"
)

// parseFilterQuery reads a filter selection from query parameters. A list
// parameter that is absent selects everything; present but empty selects
// nothing. Lists are comma separated and may be repeated.
func parseFilterQuery(query url.Values) (rest.FilterSelection, error) {
	var request rest.FilterSelection

	request.Cities = listParam(query, "cities")
	request.Categories = listParam(query, "categories")

	if raw := query.Get("minRating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rest.FilterSelection{}, invalidParam("minRating", err)
		}

		request.MinRating = &v
	}

	if raw := query.Get("minReviews"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return rest.FilterSelection{}, invalidParam("minReviews", err)
		}

		request.MinReviews = &v
	}

	return request, nil
}

func listParam(query url.Values, name string) *[]string {
	raw, ok := query[name]
	if !ok {
		return nil
	}

	items := make([]string, 0)

	for _, v := range raw {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}

	items = lo.Uniq(items)

	return &items
}

func invalidParam(name string, err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		fmt.Errorf("parameter %s: %w", name, err),
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(fmt.Sprintf("invalid %s", name)),
	)
}
