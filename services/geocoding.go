package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

// GeoLocation kết quả geocoding của một địa chỉ
type GeoLocation struct {
	Country string
	City    string
	Lat     float64
	Lng     float64
}

// GeocodingResponseGoong định nghĩa cấu trúc phản hồi từ Goong
type GeocodingResponseGoong struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Compound         struct {
			Province string `json:"province"`
		} `json:"compound"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GetBestLocationFromResponseGoong lấy tọa độ và thành phố từ phản hồi API Goong
func GetBestLocationFromResponseGoong(body io.Reader) (*GeoLocation, error) {
	var response GeocodingResponseGoong
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(response.Results) == 0 {
		return nil, errors.New("no results found")
	}

	bestResult := response.Results[0] // Chọn kết quả đầu tiên
	return &GeoLocation{
		Country: "Việt Nam",
		City:    bestResult.Compound.Province,
		Lat:     bestResult.Geometry.Location.Lat,
		Lng:     bestResult.Geometry.Location.Lng,
	}, nil
}

// GetLocationFromAddress sử dụng API Goong để lấy quốc gia, thành phố và tọa độ
func GetLocationFromAddress(address, city, country string) (*GeoLocation, error) {
	goongAPIKey := os.Getenv("GOONG_API_KEY")
	fullAddress := fmt.Sprintf("%s, %s, %s", address, city, country)
	encodedAddress := url.QueryEscape(fullAddress)

	apiURL := fmt.Sprintf(
		"https://rsapi.goong.io/geocode?address=%s&api_key=%s",
		encodedAddress,
		goongAPIKey,
	)

	resp, err := http.Get(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	return GetBestLocationFromResponseGoong(resp.Body)
}
