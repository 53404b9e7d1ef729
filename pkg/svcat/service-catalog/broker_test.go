/*
Copyright 2019 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package servicecatalog_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/api/equality"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/rest/core/fake"

	. "github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/service-catalog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Broker", func() {
	var (
		server *fake.Server
		sdk    *SDK
		csb    *v1beta1.ClusterServiceBroker
		csb2   *v1beta1.ClusterServiceBroker
	)

	BeforeEach(func() {
		server = fake.NewServer()
		cs, err := server.Client()
		Expect(err).NotTo(HaveOccurred())
		sdk = &SDK{
			ServiceCatalogClient: cs,
		}

		csb = v1beta1.NewClusterServiceBrokerBuilder().WithName("foobar").WithURL("https://foobar.example.com").Build()
		csb2 = v1beta1.NewClusterServiceBrokerBuilder().WithName("barbaz").WithURL("https://barbaz.example.com").Build()
		for _, b := range []*v1beta1.ClusterServiceBroker{csb, csb2} {
			_, err := server.Storage().Create(b)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("CreateBroker", func() {
		It("stores the broker on the server", func() {
			broker := v1beta1.NewClusterServiceBrokerBuilder().WithName("potato").WithURL("https://potato.example.com").Build()

			created, err := sdk.CreateBroker(broker)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Name).To(Equal("potato"))
			Expect(created.Spec).To(Equal(broker.Spec))
			Expect(created.UID).NotTo(BeEmpty())
			Expect(server.Storage().Len()).To(Equal(3))
		})
		It("rejects a broker without a name before calling the server", func() {
			broker := v1beta1.NewClusterServiceBrokerBuilder().WithURL("https://potato.example.com").Build()

			_, err := sdk.CreateBroker(broker)

			Expect(apierrors.IsInvalid(err)).To(BeTrue())
			Expect(server.Storage().Len()).To(Equal(2))
		})
		It("rejects a broker without a url", func() {
			broker := v1beta1.NewClusterServiceBrokerBuilder().WithName("potato").Build()

			_, err := sdk.CreateBroker(broker)

			Expect(apierrors.IsInvalid(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("spec.url"))
		})
		It("reports a conflict for a name already in use", func() {
			broker := v1beta1.NewClusterServiceBrokerBuilder().WithName("foobar").WithURL("https://other.example.com").Build()

			_, err := sdk.CreateBroker(broker)

			Expect(err).To(HaveOccurred())
			Expect(apierrors.IsAlreadyExists(errors.Cause(err))).To(BeTrue())
			stored, _ := server.Storage().Get("foobar")
			Expect(stored.Spec.URL).To(Equal("https://foobar.example.com"))
		})
		It("lets the server generate a name", func() {
			broker := v1beta1.NewClusterServiceBrokerBuilder().WithURL("https://potato.example.com").Build()
			broker.GenerateName = "potato-"

			created, err := sdk.CreateBroker(broker)

			Expect(err).NotTo(HaveOccurred())
			Expect(created.Name).To(HavePrefix("potato-"))
		})
	})

	Describe("RetrieveBrokers", func() {
		It("returns every broker", func() {
			brokers, err := sdk.RetrieveBrokers()

			Expect(err).NotTo(HaveOccurred())
			Expect(brokers).To(HaveLen(2))
			Expect(brokers[0].Name).To(Equal("barbaz"))
			Expect(brokers[1].Name).To(Equal("foobar"))
		})
		It("returns the list metadata", func() {
			list, err := sdk.RetrieveBrokerList()

			Expect(err).NotTo(HaveOccurred())
			Expect(list.ResourceVersion).To(Equal("2"))
			Expect(list.Items).To(HaveLen(2))
		})
		It("Bubbles up errors", func() {
			server.Close()

			_, err := sdk.RetrieveBrokers()

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to list brokers"))
		})
	})

	Describe("RetrieveBroker", func() {
		It("returns the broker with the passed in name", func() {
			broker, err := sdk.RetrieveBroker(csb.Name)

			Expect(err).NotTo(HaveOccurred())
			Expect(broker).NotTo(BeNil())
			Expect(broker.Name).To(Equal(csb.Name))
			Expect(broker.Spec).To(Equal(csb.Spec))
		})
		It("returns nil for a broker that does not exist", func() {
			broker, err := sdk.RetrieveBroker("banana")

			Expect(err).NotTo(HaveOccurred())
			Expect(broker).To(BeNil())
		})
		It("returns nil for names no broker can be created with", func() {
			for _, name := range []string{"", "..", "a/b"} {
				broker, err := sdk.RetrieveBroker(name)

				Expect(err).NotTo(HaveOccurred())
				Expect(broker).To(BeNil())
			}
		})
		It("Bubbles up errors", func() {
			server.Close()

			broker, err := sdk.RetrieveBroker(csb.Name)

			Expect(err).To(HaveOccurred())
			Expect(broker).To(BeNil())
		})
	})

	Describe("DeregisterBroker", func() {
		It("deletes a broker by name and reports it", func() {
			deleted, err := sdk.DeregisterBroker(csb.Name)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())
			_, found := server.Storage().Get(csb.Name)
			Expect(found).To(BeFalse())
		})
		It("reports false for a broker that does not exist", func() {
			deleted, err := sdk.DeregisterBroker("banana")

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(server.Storage().Len()).To(Equal(2))
		})
		It("reports false for names no broker can be created with", func() {
			for _, name := range []string{"", ".", "a/b"} {
				deleted, err := sdk.DeregisterBroker(name)

				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			}
			Expect(server.Storage().Len()).To(Equal(2))
		})
		It("Bubbles up errors", func() {
			server.Close()

			deleted, err := sdk.DeregisterBroker(csb.Name)

			Expect(err).To(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(err.Error()).To(ContainSubstring("deregister request failed"))
		})
	})

	Describe("LoadBroker", func() {
		It("parses a yaml descriptor", func() {
			broker, err := sdk.LoadBrokerFile(filepath.Join("testdata", "broker.yaml"))

			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Name).To(Equal("broker"))
			Expect(broker.Labels).To(HaveKeyWithValue("app", "ups-broker"))
			Expect(broker.Spec.URL).To(Equal("https://broker.example.com"))
			Expect(broker.Spec.InsecureSkipTLSVerify).To(BeTrue())
			Expect(broker.Spec.RelistDuration.Duration).To(Equal(15 * time.Minute))
			Expect(broker.Spec.AuthInfo.Basic.SecretRef.Name).To(Equal("broker-auth"))
			Expect(server.Storage().Len()).To(Equal(2), "loading must not touch the server")
		})
		It("parses a json descriptor without type information", func() {
			broker, err := sdk.LoadBroker(strings.NewReader(`{"metadata":{"name":"broker"},"spec":{"url":"https://broker.example.com"}}`))

			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Kind).To(Equal("ClusterServiceBroker"))
			Expect(broker.APIVersion).To(Equal("servicecatalog.k8s.io/v1beta1"))
			Expect(broker.Name).To(Equal("broker"))
		})
		It("rejects a descriptor without a name", func() {
			_, err := sdk.LoadBrokerFile(filepath.Join("testdata", "broker-no-name.yaml"))

			Expect(err).To(HaveOccurred())
			Expect(apierrors.IsInvalid(errors.Cause(err))).To(BeTrue())
		})
		It("rejects a descriptor of another kind", func() {
			_, err := sdk.LoadBrokerFile(filepath.Join("testdata", "class.yaml"))

			Expect(err).To(HaveOccurred())
			Expect(apierrors.IsBadRequest(errors.Cause(err))).To(BeTrue())
		})
		It("rejects a malformed descriptor", func() {
			_, err := sdk.LoadBroker(strings.NewReader("metadata: [name"))

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to parse"))
		})
		It("rejects an empty descriptor", func() {
			_, err := sdk.LoadBroker(strings.NewReader(""))

			Expect(err).To(HaveOccurred())
		})
		It("reports a missing file", func() {
			_, err := sdk.LoadBrokerFile(filepath.Join("testdata", "missing.yaml"))

			Expect(err).To(HaveOccurred())
			Expect(os.IsNotExist(errors.Cause(err))).To(BeTrue())
		})
		It("round trips through create and get", func() {
			loaded, err := sdk.LoadBrokerFile(filepath.Join("testdata", "broker.yaml"))
			Expect(err).NotTo(HaveOccurred())

			_, err = sdk.CreateBroker(loaded)
			Expect(err).NotTo(HaveOccurred())
			got, err := sdk.RetrieveBroker(loaded.Name)

			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal(loaded.Name))
			Expect(equality.Semantic.DeepEqual(got.Spec, loaded.Spec)).To(BeTrue())
		})
	})

	Describe("Register", func() {
		It("creates a broker from the options", func() {
			caFile := filepath.Join(os.TempDir(), "svcat-mock-ca.pem")
			Expect(ioutil.WriteFile(caFile, []byte("my-ca"), 0644)).To(Succeed())
			defer os.Remove(caFile)
			opts := &RegisterOptions{
				BearerSecret:   "token",
				CAFile:         caFile,
				Namespace:      "brokers",
				RelistBehavior: v1beta1.ServiceBrokerRelistBehaviorDuration,
				RelistDuration: &metav1.Duration{Duration: 10 * time.Minute},
			}

			broker, err := sdk.Register("potato", "https://potato.example.com", opts)

			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Spec.URL).To(Equal("https://potato.example.com"))
			Expect(broker.Spec.CABundle).To(Equal([]byte("my-ca")))
			Expect(broker.Spec.AuthInfo.Bearer.SecretRef).To(Equal(&v1beta1.ObjectReference{Namespace: "brokers", Name: "token"}))
			Expect(broker.Spec.RelistDuration.Duration).To(Equal(10 * time.Minute))
		})
		It("uses basic auth over bearer auth", func() {
			opts := &RegisterOptions{BasicSecret: "basic", BearerSecret: "token", Namespace: "brokers"}

			broker, err := sdk.Register("potato", "https://potato.example.com", opts)

			Expect(err).NotTo(HaveOccurred())
			Expect(broker.Spec.AuthInfo.Basic).NotTo(BeNil())
			Expect(broker.Spec.AuthInfo.Bearer).To(BeNil())
		})
		It("fails for a missing CA file", func() {
			_, err := sdk.Register("potato", "https://potato.example.com", &RegisterOptions{CAFile: "/does/not/exist"})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Error opening CA file"))
		})
		It("Bubbles up validation errors", func() {
			_, err := sdk.Register("potato", "", &RegisterOptions{})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("register request failed"))
		})
	})
})
