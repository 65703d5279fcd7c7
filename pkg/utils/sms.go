package utils

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// SendSMS delivers a message through the Africa's Talking gateway when
// credentials are configured. Without credentials it logs the message and
// reports success, which is what local and test environments want.
func SendSMS(mobile, message string) error {
	username := os.Getenv("AT_USERNAME")
	apiKey := os.Getenv("AT_API_KEY")

	if username == "" || apiKey == "" {
		log.Printf("SMS to %s: %s", mobile, message)
		return nil
	}

	return sendViaGateway(username, apiKey, message, []string{mobile})
}

func sendViaGateway(username, apiKey, message string, recipients []string) error {
	baseURL := "https://api.africastalking.com/version1/messaging"

	data := url.Values{}
	data.Set("username", username)
	data.Set("to", strings.Join(recipients, ","))
	data.Set("message", message)

	req, err := http.NewRequest("POST", baseURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apiKey", apiKey)
	req.Header.Set("Accept", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to send SMS: status code %d", resp.StatusCode)
	}

	log.Printf("Sent SMS to %s", strings.Join(recipients, ","))
	return nil
}
