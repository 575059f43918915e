package api_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/blacdimirr/traccarsavekid/console/api"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("DefaultClient", func() {

	var (
		ctx    = context.Background()
		server *httptest.Server
		client *DefaultClient

		receivedSessionToken string
		receivedMethod       string
		receivedBody         []byte
		responseStatus       int
		responseBody         string
	)

	BeforeEach(func() {
		responseStatus = http.StatusOK
		responseBody = `[]`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedSessionToken = r.Header.Get("X-Session-Token")
			receivedMethod = r.Method
			receivedBody, _ = ioutil.ReadAll(r.Body)
			w.WriteHeader(responseStatus)
			w.Write([]byte(responseBody))
		}))

		hostname := strings.TrimPrefix(server.URL, "http://")
		client = NewDefaultClient("http", hostname, "session-token-1")
	})

	AfterEach(func() {
		server.Close()
	})

	Context("listing children", func() {
		It("should decode the collection and send the session token", func() {
			responseBody = `[{"id":1,"name":"Ana","lastName":"Lee","height":null,"weight":null,"deviceId":5}]`

			children, err := client.ListChildren(ctx)
			Expect(err).To(BeNil())
			Expect(children).To(HaveLen(1))
			Expect(children[0].Name).To(Equal("Ana"))
			Expect(children[0].Height).To(BeNil())
			Expect(receivedSessionToken).To(Equal("session-token-1"))
		})
	})

	Context("fetching one child", func() {
		It("should map a missing child to the not-found sentinel", func() {
			responseStatus = http.StatusNotFound
			responseBody = `{"error":"child not found"}`

			_, err := client.GetChild(ctx, 42)
			Expect(err).NotTo(BeNil())
			Expect(errors.Cause(err)).To(Equal(ErrServerNotFound))
		})
	})

	Context("creating a child", func() {
		It("should post the json payload", func() {
			responseStatus = http.StatusCreated
			responseBody = `{"id":9,"name":"Ana","lastName":"Lee","height":null,"weight":null}`

			created, err := client.AddChild(ctx, Child{Name: "Ana", LastName: "Lee", DeviceId: 5})
			Expect(err).To(BeNil())
			Expect(created.Id).To(Equal(int64(9)))
			Expect(receivedMethod).To(Equal(http.MethodPost))

			sent := Child{}
			Expect(json.Unmarshal(receivedBody, &sent)).To(Succeed())
			Expect(sent.DeviceId).To(Equal(int64(5)))
		})

		It("should map a rejected payload to the bad-request sentinel", func() {
			responseStatus = http.StatusBadRequest
			responseBody = `{"error":"birthDate is not a valid date"}`

			_, err := client.AddChild(ctx, Child{Name: "Ana"})
			Expect(errors.Cause(err)).To(Equal(ErrServerBadRequest))
		})
	})

	Context("deleting a child", func() {
		It("should issue a delete request", func() {
			responseStatus = http.StatusNoContent
			responseBody = ``

			Expect(client.DeleteChild(ctx, 1)).To(Succeed())
			Expect(receivedMethod).To(Equal(http.MethodDelete))
		})
	})

	Context("when the server fails", func() {
		It("should map server errors to the server-error sentinel", func() {
			responseStatus = http.StatusInternalServerError
			responseBody = `{"error":"boom"}`

			_, err := client.ListDevices(ctx)
			Expect(errors.Cause(err)).To(Equal(ErrServerError))
		})
	})

	Context("listing devices", func() {
		It("should decode the device collection", func() {
			responseBody = `[{"id":5,"name":"Tracker1"}]`

			devices, err := client.ListDevices(ctx)
			Expect(err).To(BeNil())
			Expect(devices).To(HaveLen(1))
			Expect(devices[0].Name).To(Equal("Tracker1"))
		})
	})
})
