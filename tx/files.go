// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tx

// TxFiles lists the files accompanying a transaction. The certificate files
// determine the protocol deposit implied by the transaction
type TxFiles struct {
	CertificateFiles  []string `json:"certificateFiles,omitempty"`
	ProposalFiles     []string `json:"proposalFiles,omitempty"`
	MetadataJsonFiles []string `json:"metadataJsonFiles,omitempty"`
	MetadataCborFiles []string `json:"metadataCborFiles,omitempty"`
	SigningKeyFiles   []string `json:"signingKeyFiles,omitempty"`
}
