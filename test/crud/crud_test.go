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

package crud_test

import (
	"fmt"
	"math/rand"
	"os"

	fuzz "github.com/google/gofuzz"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/rest/core/fake"
	servicecatalog "github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/service-catalog"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const fuzzIterations = 20

// transports a scenario runs over. Every scenario gets its own server.
var transports = map[string]func(*fake.Server){
	"in-process": func(*fake.Server) {},
	"loopback":   func(s *fake.Server) { s.Start() },
}

func newBroker(name, url string) *v1beta1.ClusterServiceBroker {
	return v1beta1.NewClusterServiceBrokerBuilder().WithName(name).WithURL(url).Build()
}

// fuzzBrokers returns n brokers with distinct names and random valid specs.
func fuzzBrokers(seed int64, n int) []*v1beta1.ClusterServiceBroker {
	f := fuzz.New().NilChance(0).RandSource(rand.NewSource(seed))
	brokers := make([]*v1beta1.ClusterServiceBroker, 0, n)
	for i := 0; i < n; i++ {
		var (
			path           string
			skipTLS        bool
			relistRequests uint16
		)
		f.Fuzz(&path)
		f.Fuzz(&skipTLS)
		f.Fuzz(&relistRequests)

		broker := newBroker(fmt.Sprintf("broker-%d-%d", seed, i), fmt.Sprintf("https://broker-%d.example.com/%x", i, path))
		broker.Spec.InsecureSkipTLSVerify = skipTLS
		broker.Spec.RelistRequests = int64(relistRequests)
		brokers = append(brokers, broker)
	}
	return brokers
}

var _ = Describe("ClusterServiceBroker CRUD", func() {
	for name, start := range transports {
		start := start

		Context("over "+name, func() {
			var (
				server *fake.Server
				sdk    *servicecatalog.SDK
			)

			BeforeEach(func() {
				server = fake.NewServer()
				start(server)
				cs, err := server.Client()
				Expect(err).NotTo(HaveOccurred())
				sdk = &servicecatalog.SDK{ServiceCatalogClient: cs}
			})

			AfterEach(func() {
				server.Close()
			})

			It("lists every created broker", func() {
				_, err := sdk.CreateBroker(newBroker("broker1", "https://broker1.example.com"))
				Expect(err).NotTo(HaveOccurred())
				_, err = sdk.CreateBroker(newBroker("broker2", "https://broker2.example.com"))
				Expect(err).NotTo(HaveOccurred())

				brokers, err := sdk.RetrieveBrokers()

				Expect(err).NotTo(HaveOccurred())
				Expect(brokers).To(HaveLen(2))
			})

			It("gets a created broker", func() {
				_, err := sdk.CreateBroker(newBroker("broker", "https://broker.example.com"))
				Expect(err).NotTo(HaveOccurred())

				broker, err := sdk.RetrieveBroker("broker")

				Expect(err).NotTo(HaveOccurred())
				Expect(broker).NotTo(BeNil())
			})

			It("gets a broker loaded from a descriptor file", func() {
				f, err := os.Open("testdata/broker.yaml")
				Expect(err).NotTo(HaveOccurred())
				defer f.Close()
				loaded, err := sdk.LoadBroker(f)
				Expect(err).NotTo(HaveOccurred())
				_, err = sdk.CreateBroker(loaded)
				Expect(err).NotTo(HaveOccurred())

				broker, err := sdk.RetrieveBroker("broker")

				Expect(err).NotTo(HaveOccurred())
				Expect(broker).NotTo(BeNil())
				Expect(broker.Name).To(Equal(loaded.Name))
				Expect(broker.Spec).To(Equal(loaded.Spec))
			})

			It("does not get a deleted broker", func() {
				_, err := sdk.CreateBroker(newBroker("broker", "https://broker.example.com"))
				Expect(err).NotTo(HaveOccurred())

				deleted, err := sdk.DeregisterBroker("broker")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeTrue())

				broker, err := sdk.RetrieveBroker("broker")
				Expect(err).NotTo(HaveOccurred())
				Expect(broker).To(BeNil())
			})

			It("starts every scenario with an empty registry", func() {
				brokers, err := sdk.RetrieveBrokers()

				Expect(err).NotTo(HaveOccurred())
				Expect(brokers).To(BeEmpty())
			})

			Describe("properties", func() {
				It("lists exactly as many brokers as were created with distinct names", func() {
					for seed := int64(0); seed < fuzzIterations; seed++ {
						brokers := fuzzBrokers(seed, int(seed%5))
						for _, b := range brokers {
							_, err := sdk.CreateBroker(b)
							Expect(err).NotTo(HaveOccurred())
						}

						list, err := sdk.RetrieveBrokers()
						Expect(err).NotTo(HaveOccurred())
						Expect(list).To(HaveLen(len(brokers)))

						for _, b := range brokers {
							_, err := sdk.DeregisterBroker(b.Name)
							Expect(err).NotTo(HaveOccurred())
						}
					}
				})

				It("gets a broker equal to the one created", func() {
					for _, want := range fuzzBrokers(42, fuzzIterations) {
						_, err := sdk.CreateBroker(want)
						Expect(err).NotTo(HaveOccurred())

						got, err := sdk.RetrieveBroker(want.Name)
						Expect(err).NotTo(HaveOccurred())
						Expect(got).NotTo(BeNil())
						Expect(got.Name).To(Equal(want.Name))
						Expect(got.Spec).To(Equal(want.Spec))
					}
				})

				It("never gets a broker that was not created", func() {
					_, err := sdk.CreateBroker(newBroker("broker", "https://broker.example.com"))
					Expect(err).NotTo(HaveOccurred())

					f := fuzz.New().RandSource(rand.NewSource(7))
					for i := 0; i < fuzzIterations; i++ {
						var suffix uint32
						f.Fuzz(&suffix)

						got, err := sdk.RetrieveBroker(fmt.Sprintf("never-created-%d", suffix))
						Expect(err).NotTo(HaveOccurred())
						Expect(got).To(BeNil())
					}

					for _, name := range []string{"", ".", "..", "a/b", "%zz"} {
						got, err := sdk.RetrieveBroker(name)
						Expect(err).NotTo(HaveOccurred(), "name %q", name)
						Expect(got).To(BeNil(), "name %q", name)

						deleted, err := sdk.DeregisterBroker(name)
						Expect(err).NotTo(HaveOccurred(), "name %q", name)
						Expect(deleted).To(BeFalse(), "name %q", name)
					}
					Expect(sdk.RetrieveBrokers()).To(HaveLen(1))
				})

				It("leaves the registry unchanged when deleting a missing broker", func() {
					for _, b := range fuzzBrokers(3, 3) {
						_, err := sdk.CreateBroker(b)
						Expect(err).NotTo(HaveOccurred())
					}
					before, err := sdk.RetrieveBrokerList()
					Expect(err).NotTo(HaveOccurred())

					deleted, err := sdk.DeregisterBroker("missing")
					Expect(err).NotTo(HaveOccurred())
					Expect(deleted).To(BeFalse())

					after, err := sdk.RetrieveBrokerList()
					Expect(err).NotTo(HaveOccurred())
					Expect(after.Items).To(Equal(before.Items))
					Expect(after.ResourceVersion).To(Equal(before.ResourceVersion))
				})

				It("rejects a second broker with the same name", func() {
					_, err := sdk.CreateBroker(newBroker("broker", "https://broker.example.com"))
					Expect(err).NotTo(HaveOccurred())

					_, err = sdk.CreateBroker(newBroker("broker", "https://other.example.com"))
					Expect(err).To(HaveOccurred())

					got, err := sdk.RetrieveBroker("broker")
					Expect(err).NotTo(HaveOccurred())
					Expect(got.Spec.URL).To(Equal("https://broker.example.com"))
				})
			})
		})
	}
})
