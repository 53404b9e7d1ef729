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
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/duration"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/service-catalog"
)

const none = "<none>"

func newTable(w io.Writer) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetBorder(false)
	t.SetColumnSeparator(" ")
	return t
}

// brokerAge renders how long ago the mock server stored the broker.
func brokerAge(created metav1.Time, now time.Time) string {
	if created.IsZero() {
		return none
	}
	return duration.HumanDuration(now.Sub(created.Time))
}

func brokerLabels(broker servicecatalog.Broker) string {
	if len(broker.GetLabels()) == 0 {
		return none
	}
	return labels.Set(broker.GetLabels()).String()
}

func writeBrokerListTable(w io.Writer, brokers []servicecatalog.Broker, now time.Time) {
	t := newTable(w)
	t.SetHeader([]string{
		"Name",
		"URL",
		"Resource Version",
		"Age",
	})
	for _, broker := range brokers {
		t.Append([]string{
			broker.GetName(),
			broker.GetURL(),
			broker.GetResourceVersion(),
			brokerAge(broker.GetCreationTimestamp(), now),
		})
	}
	t.Render()
}

// WriteBrokerList prints a list of brokers in the specified output format.
func WriteBrokerList(w io.Writer, outputFormat string, list *v1beta1.ClusterServiceBrokerList) {
	if writeEncoded(w, outputFormat, list) {
		return
	}
	brokers := make([]servicecatalog.Broker, 0, len(list.Items))
	for i := range list.Items {
		brokers = append(brokers, &list.Items[i])
	}
	writeBrokerListTable(w, brokers, time.Now())
}

// WriteBroker prints a broker in the specified output format.
func WriteBroker(w io.Writer, outputFormat string, broker v1beta1.ClusterServiceBroker) {
	if writeEncoded(w, outputFormat, broker) {
		return
	}
	writeBrokerListTable(w, []servicecatalog.Broker{&broker}, time.Now())
}

// WriteBrokerDetails prints the identity the mock server assigned to a
// broker along with its url and labels.
func WriteBrokerDetails(w io.Writer, broker servicecatalog.Broker) {
	writeBrokerDetails(w, broker, time.Now())
}

func writeBrokerDetails(w io.Writer, broker servicecatalog.Broker, now time.Time) {
	t := newTable(w)
	// tablewriter wraps ragged text, which suits lists but not a details view
	t.SetAutoWrapText(false)

	created := none
	if ts := broker.GetCreationTimestamp(); !ts.IsZero() {
		created = fmt.Sprintf("%s (%s ago)", ts.UTC().Format(time.RFC3339), brokerAge(ts, now))
	}
	t.AppendBulk([][]string{
		{"Name:", broker.GetName()},
		{"URL:", broker.GetURL()},
		{"UID:", string(broker.GetUID())},
		{"Resource Version:", broker.GetResourceVersion()},
		{"Created:", created},
		{"Labels:", brokerLabels(broker)},
	})

	t.Render()
}

// WriteDeletedBrokerName prints the name of a deregistered broker.
func WriteDeletedBrokerName(w io.Writer, brokerName string) {
	fmt.Fprintf(w, "Successfully removed broker %q\n", brokerName)
}
